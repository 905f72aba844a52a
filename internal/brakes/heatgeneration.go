package brakes

import (
	"fmt"

	"github.com/podforge/podmodel/internal/component"
)

// HeatGeneration splits the frictional braking power between the pad
// and the track by a fixed absorption ratio.
type HeatGeneration struct {
	PadRatio float64 // fraction of frictional power absorbed by the pad, in (0,1)
}

func NewHeatGeneration() *HeatGeneration {
	return &HeatGeneration{PadRatio: 0.5}
}

func (h *HeatGeneration) Name() string { return "heat_generation" }

func (h *HeatGeneration) Inputs() []component.Port {
	return []component.Port{
		{Name: "braking_force", Units: "N", Desc: "braking force of the friction pad", Default: 1.0},
		{Name: "surface_velocity", Units: "m/s", Desc: "velocity of the surface relative to the pad", Default: 1.0},
	}
}

func (h *HeatGeneration) Outputs() []component.Port {
	return []component.Port{
		{Name: "heat_rate_pad", Units: "W", Desc: "heat absorbed by the friction pad"},
		{Name: "heat_rate_track", Units: "W", Desc: "heat absorbed by the track"},
	}
}

// Split returns the pad and track heat rates for a braking force and
// surface velocity. The two always sum to force*velocity.
func (h *HeatGeneration) Split(force, velocity float64) (pad, track float64, err error) {
	if h.PadRatio <= 0 || h.PadRatio >= 1 {
		return 0, 0, fmt.Errorf("%w: pad_ratio=%g", component.ErrRatioBounds, h.PadRatio)
	}
	total := force * velocity
	return h.PadRatio * total, (1 - h.PadRatio) * total, nil
}

func (h *HeatGeneration) Evaluate(in component.Values) (component.Values, error) {
	force, err := in.Get("braking_force")
	if err != nil {
		return nil, err
	}
	velocity, err := in.Get("surface_velocity")
	if err != nil {
		return nil, err
	}
	pad, track, err := h.Split(force, velocity)
	if err != nil {
		return nil, err
	}
	return component.Values{
		"heat_rate_pad":   pad,
		"heat_rate_track": track,
	}, nil
}

func (h *HeatGeneration) Options() []component.Port {
	return []component.Port{
		{Name: "pad_ratio", Units: "-", Desc: "fraction of heat absorbed by the pad vs track"},
	}
}

func (h *HeatGeneration) GetOptions() map[string]float64 {
	return map[string]float64{"pad_ratio": h.PadRatio}
}

func (h *HeatGeneration) SetOption(name string, value float64) error {
	switch name {
	case "pad_ratio":
		h.PadRatio = value
	default:
		return fmt.Errorf("%w: %s", component.ErrUnknownOption, name)
	}
	return nil
}
