package sweep

import (
	"errors"
	"testing"

	"github.com/podforge/podmodel/internal/brakes"
	"github.com/podforge/podmodel/internal/component"
)

func TestSweepFrictionOverSpeed(t *testing.T) {
	f := brakes.NewFrictionCoefficient()
	f.SteadyStateMu = 0.38
	f.SpeedGain = 0.35
	f.SpeedDecay = 0.05
	f.TempGain = 0.25
	f.TempDecay = 0.01
	f.ReferenceTemp = 293.0

	s := &Sweep{
		Component: f,
		Input:     "surface_velocity",
		Output:    "friction_coefficient",
		From:      0,
		To:        120,
		Steps:     25,
		Fixed:     component.Values{"temperature": 293.0},
	}

	res, err := s.Run()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(res.Xs) != 25 || len(res.Ys) != 25 {
		t.Fatalf("expected 25 points, got %d/%d", len(res.Xs), len(res.Ys))
	}
	if res.Xs[0] != 0 || res.Xs[24] != 120 {
		t.Errorf("range endpoints wrong: %g..%g", res.Xs[0], res.Xs[24])
	}

	// mu decays monotonically with speed for this option set.
	for i := 1; i < len(res.Ys); i++ {
		if res.Ys[i] >= res.Ys[i-1] {
			t.Errorf("expected monotone decrease at point %d: %g >= %g", i, res.Ys[i], res.Ys[i-1])
		}
	}
}

func TestSweepValidation(t *testing.T) {
	f := brakes.NewFrictionCoefficient()

	tests := []struct {
		name string
		s    Sweep
	}{
		{"no component", Sweep{Input: "x", Output: "y", From: 0, To: 1, Steps: 5}},
		{"too few steps", Sweep{Component: f, Input: "surface_velocity", Output: "friction_coefficient", From: 0, To: 1, Steps: 1}},
		{"empty range", Sweep{Component: f, Input: "surface_velocity", Output: "friction_coefficient", From: 2, To: 2, Steps: 5}},
		{"unknown input", Sweep{Component: f, Input: "airspeed", Output: "friction_coefficient", From: 0, To: 1, Steps: 5}},
		{"unknown output", Sweep{Component: f, Input: "surface_velocity", Output: "lift", From: 0, To: 1, Steps: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.s.Run(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSweepPropagatesEvaluationErrors(t *testing.T) {
	h := brakes.NewHeatConduction()

	// Sweeping the pad temperature down through the contact temperature
	// crosses into the invalid region and must abort.
	s := &Sweep{
		Component: h,
		Input:     "pad_temperature",
		Output:    "heat_rate",
		From:      500,
		To:        300,
		Steps:     11,
		Fixed:     component.Values{"contact_temperature": 350, "contact_area": 0.012},
	}

	_, err := s.Run()
	if !errors.Is(err, component.ErrTemperatureOrder) {
		t.Errorf("expected temperature order error, got %v", err)
	}
}
