// Package sweep evaluates a component repeatedly across one input
// range, producing a plottable input/output series.
package sweep

import (
	"fmt"

	"github.com/podforge/podmodel/internal/component"
)

// Sweep varies Input from From to To in Steps evaluations, holding the
// remaining inputs at Fixed, and collects Output.
type Sweep struct {
	Component component.Component
	Input     string
	Output    string
	From      float64
	To        float64
	Steps     int
	Fixed     component.Values
}

// Result holds the swept input values and the collected output series.
type Result struct {
	Xs []float64
	Ys []float64
}

func (s *Sweep) validate() error {
	if s.Component == nil {
		return fmt.Errorf("sweep: no component")
	}
	if s.Steps < 2 {
		return fmt.Errorf("sweep: need at least 2 steps, got %d", s.Steps)
	}
	if s.To == s.From {
		return fmt.Errorf("sweep: empty range [%g, %g]", s.From, s.To)
	}
	if !hasPort(s.Component.Inputs(), s.Input) {
		return fmt.Errorf("sweep: %s has no input %q", s.Component.Name(), s.Input)
	}
	if !hasPort(s.Component.Outputs(), s.Output) {
		return fmt.Errorf("sweep: %s has no output %q", s.Component.Name(), s.Output)
	}
	return nil
}

func hasPort(ports []component.Port, name string) bool {
	for _, p := range ports {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Run evaluates the sweep. An evaluation error anywhere in the range
// aborts the sweep at the offending point.
func (s *Sweep) Run() (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Xs: make([]float64, 0, s.Steps),
		Ys: make([]float64, 0, s.Steps),
	}

	step := (s.To - s.From) / float64(s.Steps-1)
	for i := 0; i < s.Steps; i++ {
		x := s.From + float64(i)*step

		in := s.Fixed.Clone()
		in[s.Input] = x

		out, err := s.Component.Evaluate(in)
		if err != nil {
			return nil, fmt.Errorf("sweep at %s=%g: %w", s.Input, x, err)
		}
		y, err := out.Get(s.Output)
		if err != nil {
			return nil, err
		}

		res.Xs = append(res.Xs, x)
		res.Ys = append(res.Ys, y)
	}

	return res, nil
}
