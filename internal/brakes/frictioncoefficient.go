package brakes

import (
	"fmt"
	"math"

	"github.com/podforge/podmodel/internal/component"
)

// FrictionCoefficient models the dynamic friction coefficient of the
// brake pad as an exponential decay in sliding speed and temperature
// rise above a reference temperature.
type FrictionCoefficient struct {
	SteadyStateMu float64 // steady-state friction coefficient mu0
	SpeedGain     float64 // multiplication factor on the speed term (n_v)
	SpeedDecay    float64 // parametric decay rate in speed (m_v)
	TempGain      float64 // multiplication factor on the temperature term (n_t)
	TempDecay     float64 // parametric decay rate in temperature (m_t)
	ReferenceTemp float64 // temperature at which the pad was characterized (K)
}

func NewFrictionCoefficient() *FrictionCoefficient {
	return &FrictionCoefficient{
		SteadyStateMu: 1.0,
		SpeedGain:     1.0,
		SpeedDecay:    1.0,
		TempGain:      1.0,
		TempDecay:     1.0,
		ReferenceTemp: 1.0,
	}
}

func (f *FrictionCoefficient) Name() string { return "friction_coefficient" }

func (f *FrictionCoefficient) Inputs() []component.Port {
	return []component.Port{
		{Name: "surface_velocity", Units: "m/s", Desc: "velocity of the surface relative to the pad", Default: 1.0},
		{Name: "temperature", Units: "K", Desc: "temperature of the friction pad", Default: 1.0},
	}
}

func (f *FrictionCoefficient) Outputs() []component.Port {
	return []component.Port{
		{Name: "friction_coefficient", Units: "-", Desc: "dynamic friction coefficient of the pad"},
	}
}

// Coefficient evaluates mu = mu0 * (1 + n_v*exp(-m_v*v)) * (1 + n_t*exp(-m_t*(T-T0))).
func (f *FrictionCoefficient) Coefficient(velocity, temperature float64) float64 {
	speedFactor := 1 + f.SpeedGain*math.Exp(-f.SpeedDecay*velocity)
	tempFactor := 1 + f.TempGain*math.Exp(-f.TempDecay*(temperature-f.ReferenceTemp))
	return f.SteadyStateMu * speedFactor * tempFactor
}

func (f *FrictionCoefficient) Evaluate(in component.Values) (component.Values, error) {
	v, err := in.Get("surface_velocity")
	if err != nil {
		return nil, err
	}
	t, err := in.Get("temperature")
	if err != nil {
		return nil, err
	}
	return component.Values{"friction_coefficient": f.Coefficient(v, t)}, nil
}

func (f *FrictionCoefficient) Options() []component.Port {
	return []component.Port{
		{Name: "steady_state_mu", Units: "-", Desc: "friction coefficient at steady state"},
		{Name: "speed_gain", Units: "-", Desc: "multiplication factor, speed term"},
		{Name: "speed_decay", Units: "s/m", Desc: "parametric factor, speed term"},
		{Name: "temp_gain", Units: "-", Desc: "multiplication factor, temperature rise term"},
		{Name: "temp_decay", Units: "1/K", Desc: "parametric factor, temperature rise term"},
		{Name: "reference_temp", Units: "K", Desc: "characterization temperature"},
	}
}

func (f *FrictionCoefficient) GetOptions() map[string]float64 {
	return map[string]float64{
		"steady_state_mu": f.SteadyStateMu,
		"speed_gain":      f.SpeedGain,
		"speed_decay":     f.SpeedDecay,
		"temp_gain":       f.TempGain,
		"temp_decay":      f.TempDecay,
		"reference_temp":  f.ReferenceTemp,
	}
}

func (f *FrictionCoefficient) SetOption(name string, value float64) error {
	switch name {
	case "steady_state_mu":
		f.SteadyStateMu = value
	case "speed_gain":
		f.SpeedGain = value
	case "speed_decay":
		f.SpeedDecay = value
	case "temp_gain":
		f.TempGain = value
	case "temp_decay":
		f.TempDecay = value
	case "reference_temp":
		f.ReferenceTemp = value
	default:
		return fmt.Errorf("%w: %s", component.ErrUnknownOption, name)
	}
	return nil
}
