package component

import "fmt"

// Values holds named scalar bindings passed into and out of a component
// evaluation.
type Values map[string]float64

func (v Values) Clone() Values {
	c := make(Values, len(v))
	for k, val := range v {
		c[k] = val
	}
	return c
}

// Get returns the binding for name, or an error naming the missing input.
func (v Values) Get(name string) (float64, error) {
	val, ok := v[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingInput, name)
	}
	return val, nil
}

// Port describes one named scalar on a component boundary. Default is
// the value an evaluation assumes when the caller supplies nothing.
type Port struct {
	Name    string
	Units   string
	Desc    string
	Default float64
}

// Component is a pure evaluation from named inputs to named outputs.
// Evaluate must not retain or mutate its argument.
type Component interface {
	Name() string
	Inputs() []Port
	Outputs() []Port
	Evaluate(in Values) (Values, error)
}

// Configurable exposes a component's tunable options by name.
type Configurable interface {
	Options() []Port
	GetOptions() map[string]float64
	SetOption(name string, value float64) error
}
