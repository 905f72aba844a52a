// Package wheel models rotational stress in the pod's wheels.
package wheel

import (
	"fmt"
	"math"

	"github.com/podforge/podmodel/internal/component"
)

// RotationalStress evaluates the peak stress in a solid rotating disc,
// sigma = (3+nu)/8 * rho * omega^2 * r^2, which bounds both the radial
// and hoop stress at the hub, and the resulting safety factor against
// the wheel material's yield strength.
type RotationalStress struct {
	Density       float64 // wheel material density (kg/m^3)
	PoissonRatio  float64 // Poisson ratio of the wheel material, in (0, 0.5)
	Radius        float64 // outer radius of the wheel (m)
	YieldStrength float64 // yield strength of the wheel material (Pa)
}

func NewRotationalStress() *RotationalStress {
	// 7075-T6 aluminium.
	return &RotationalStress{
		Density:       2810.0,
		PoissonRatio:  0.33,
		Radius:        0.25,
		YieldStrength: 503e6,
	}
}

func (w *RotationalStress) Name() string { return "wheel_stress" }

func (w *RotationalStress) Inputs() []component.Port {
	return []component.Port{
		{Name: "angular_velocity", Units: "rad/s", Desc: "spin rate of the wheel", Default: 200.0},
	}
}

func (w *RotationalStress) Outputs() []component.Port {
	return []component.Port{
		{Name: "max_stress", Units: "Pa", Desc: "peak stress at the hub of the spinning wheel"},
		{Name: "safety_factor", Units: "-", Desc: "yield strength over peak stress (+Inf at rest)"},
	}
}

// MaxStress returns the peak hub stress at the given spin rate.
func (w *RotationalStress) MaxStress(omega float64) (float64, error) {
	if err := w.check(); err != nil {
		return 0, err
	}
	return (3 + w.PoissonRatio) / 8 * w.Density * omega * omega * w.Radius * w.Radius, nil
}

func (w *RotationalStress) check() error {
	if w.Density <= 0 {
		return fmt.Errorf("%w: density=%g", component.ErrNonPositive, w.Density)
	}
	if w.Radius <= 0 {
		return fmt.Errorf("%w: radius=%g", component.ErrNonPositive, w.Radius)
	}
	if w.YieldStrength <= 0 {
		return fmt.Errorf("%w: yield_strength=%g", component.ErrNonPositive, w.YieldStrength)
	}
	if w.PoissonRatio <= 0 || w.PoissonRatio >= 0.5 {
		return fmt.Errorf("%w: poisson_ratio=%g", component.ErrRatioBounds, w.PoissonRatio)
	}
	return nil
}

func (w *RotationalStress) Evaluate(in component.Values) (component.Values, error) {
	omega, err := in.Get("angular_velocity")
	if err != nil {
		return nil, err
	}
	stress, err := w.MaxStress(omega)
	if err != nil {
		return nil, err
	}
	out := component.Values{"max_stress": stress}
	if stress > 0 {
		out["safety_factor"] = w.YieldStrength / stress
	} else {
		// A stationary wheel carries no rotational stress.
		out["safety_factor"] = math.Inf(1)
	}
	return out, nil
}

func (w *RotationalStress) Options() []component.Port {
	return []component.Port{
		{Name: "density", Units: "kg/m^3", Desc: "wheel material density"},
		{Name: "poisson_ratio", Units: "-", Desc: "Poisson ratio of the wheel material"},
		{Name: "radius", Units: "m", Desc: "outer radius of the wheel"},
		{Name: "yield_strength", Units: "Pa", Desc: "yield strength of the wheel material"},
	}
}

func (w *RotationalStress) GetOptions() map[string]float64 {
	return map[string]float64{
		"density":        w.Density,
		"poisson_ratio":  w.PoissonRatio,
		"radius":         w.Radius,
		"yield_strength": w.YieldStrength,
	}
}

func (w *RotationalStress) SetOption(name string, value float64) error {
	switch name {
	case "density":
		w.Density = value
	case "poisson_ratio":
		w.PoissonRatio = value
	case "radius":
		w.Radius = value
	case "yield_strength":
		w.YieldStrength = value
	default:
		return fmt.Errorf("%w: %s", component.ErrUnknownOption, name)
	}
	return nil
}
