package brakes

import (
	"fmt"

	"github.com/podforge/podmodel/internal/component"
)

// HeatConvective models convective heat loss from the exposed brake pad
// surface to the surrounding fluid. The rate is negative: heat leaving
// the pad.
type HeatConvective struct {
	ConvectiveCoefficient float64 // convective heat transfer coefficient (W/(m^2*K))
}

func NewHeatConvective() *HeatConvective {
	return &HeatConvective{ConvectiveCoefficient: 0.5}
}

func (h *HeatConvective) Name() string { return "heat_convective" }

func (h *HeatConvective) Inputs() []component.Port {
	return []component.Port{
		{Name: "pad_temperature", Units: "K", Desc: "temperature of the brake pad", Default: 2.0},
		{Name: "surrounding_temperature", Units: "K", Desc: "temperature of the surrounding fluid", Default: 1.0},
		{Name: "pad_area", Units: "m^2", Desc: "area subject to convective heat loss", Default: 1.0},
	}
}

func (h *HeatConvective) Outputs() []component.Port {
	return []component.Port{
		{Name: "heat_rate", Units: "W", Desc: "rate of heat lost through convection (negative)"},
	}
}

// Rate returns -h*(T_pad - T_surround)*A for a pad hotter than its
// surroundings.
func (h *HeatConvective) Rate(padTemp, surroundTemp, area float64) (float64, error) {
	if h.ConvectiveCoefficient <= 0 {
		return 0, fmt.Errorf("%w: convective_coefficient=%g", component.ErrNonPositive, h.ConvectiveCoefficient)
	}
	if area <= 0 {
		return 0, fmt.Errorf("%w: pad_area=%g", component.ErrNonPositive, area)
	}
	if padTemp <= surroundTemp {
		return 0, fmt.Errorf("%w: pad=%gK surrounding=%gK", component.ErrTemperatureOrder, padTemp, surroundTemp)
	}
	return -(h.ConvectiveCoefficient * (padTemp - surroundTemp) * area), nil
}

func (h *HeatConvective) Evaluate(in component.Values) (component.Values, error) {
	padTemp, err := in.Get("pad_temperature")
	if err != nil {
		return nil, err
	}
	surroundTemp, err := in.Get("surrounding_temperature")
	if err != nil {
		return nil, err
	}
	area, err := in.Get("pad_area")
	if err != nil {
		return nil, err
	}
	rate, err := h.Rate(padTemp, surroundTemp, area)
	if err != nil {
		return nil, err
	}
	return component.Values{"heat_rate": rate}, nil
}

func (h *HeatConvective) Options() []component.Port {
	return []component.Port{
		{Name: "convective_coefficient", Units: "W/(m^2*K)", Desc: "convective coefficient of the brake pad"},
	}
}

func (h *HeatConvective) GetOptions() map[string]float64 {
	return map[string]float64{"convective_coefficient": h.ConvectiveCoefficient}
}

func (h *HeatConvective) SetOption(name string, value float64) error {
	switch name {
	case "convective_coefficient":
		h.ConvectiveCoefficient = value
	default:
		return fmt.Errorf("%w: %s", component.ErrUnknownOption, name)
	}
	return nil
}
