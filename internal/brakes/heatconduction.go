package brakes

import (
	"fmt"

	"github.com/podforge/podmodel/internal/component"
)

// HeatConduction models conductive heat loss from the brake pad across
// its contact interface. The rate is negative: heat leaving the pad.
type HeatConduction struct {
	ContactConductance float64 // thermal contact conductance between pad and pod (W/(m^2*K))
}

func NewHeatConduction() *HeatConduction {
	return &HeatConduction{ContactConductance: 0.5}
}

func (h *HeatConduction) Name() string { return "heat_conduction" }

func (h *HeatConduction) Inputs() []component.Port {
	return []component.Port{
		{Name: "pad_temperature", Units: "K", Desc: "temperature of the brake pad", Default: 2.0},
		{Name: "contact_temperature", Units: "K", Desc: "temperature of the contact area", Default: 1.0},
		{Name: "contact_area", Units: "m^2", Desc: "area subject to conductive heat loss", Default: 1.0},
	}
}

func (h *HeatConduction) Outputs() []component.Port {
	return []component.Port{
		{Name: "heat_rate", Units: "W", Desc: "rate of heat lost through conduction (negative)"},
	}
}

// Rate returns -k*(T_pad - T_contact)*A. The model only applies while
// the pad runs hotter than the contact surface.
func (h *HeatConduction) Rate(padTemp, contactTemp, area float64) (float64, error) {
	if h.ContactConductance <= 0 {
		return 0, fmt.Errorf("%w: contact_conductance=%g", component.ErrNonPositive, h.ContactConductance)
	}
	if area <= 0 {
		return 0, fmt.Errorf("%w: contact_area=%g", component.ErrNonPositive, area)
	}
	if padTemp <= contactTemp {
		return 0, fmt.Errorf("%w: pad=%gK contact=%gK", component.ErrTemperatureOrder, padTemp, contactTemp)
	}
	return -(h.ContactConductance * (padTemp - contactTemp) * area), nil
}

func (h *HeatConduction) Evaluate(in component.Values) (component.Values, error) {
	padTemp, err := in.Get("pad_temperature")
	if err != nil {
		return nil, err
	}
	contactTemp, err := in.Get("contact_temperature")
	if err != nil {
		return nil, err
	}
	area, err := in.Get("contact_area")
	if err != nil {
		return nil, err
	}
	rate, err := h.Rate(padTemp, contactTemp, area)
	if err != nil {
		return nil, err
	}
	return component.Values{"heat_rate": rate}, nil
}

func (h *HeatConduction) Options() []component.Port {
	return []component.Port{
		{Name: "contact_conductance", Units: "W/(m^2*K)", Desc: "thermal contact conductance between pad and pod"},
	}
}

func (h *HeatConduction) GetOptions() map[string]float64 {
	return map[string]float64{"contact_conductance": h.ContactConductance}
}

func (h *HeatConduction) SetOption(name string, value float64) error {
	switch name {
	case "contact_conductance":
		h.ContactConductance = value
	default:
		return fmt.Errorf("%w: %s", component.ErrUnknownOption, name)
	}
	return nil
}
