package catalog

import (
	"fmt"
	"sort"

	"github.com/podforge/podmodel/internal/brakes"
	"github.com/podforge/podmodel/internal/component"
	"github.com/podforge/podmodel/internal/drivetrain"
	"github.com/podforge/podmodel/internal/wheel"
)

// Registry maps component names to constructors. Every Get returns a
// fresh instance with default options.
type Registry struct {
	components map[string]func() component.Component
}

func NewRegistry() *Registry {
	r := &Registry{
		components: make(map[string]func() component.Component),
	}

	r.components["battery"] = func() component.Component { return drivetrain.NewBattery() }
	r.components["friction_coefficient"] = func() component.Component { return brakes.NewFrictionCoefficient() }
	r.components["heat_generation"] = func() component.Component { return brakes.NewHeatGeneration() }
	r.components["heat_conduction"] = func() component.Component { return brakes.NewHeatConduction() }
	r.components["heat_convective"] = func() component.Component { return brakes.NewHeatConvective() }
	r.components["wheel_stress"] = func() component.Component { return wheel.NewRotationalStress() }

	return r
}

func (r *Registry) Get(name string) (component.Component, error) {
	fn, ok := r.components[name]
	if !ok {
		return nil, fmt.Errorf("unknown component: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Configure applies an option map to a component. Non-configurable
// components reject any options.
func Configure(c component.Component, options map[string]float64) error {
	if len(options) == 0 {
		return nil
	}
	cfg, ok := c.(component.Configurable)
	if !ok {
		return fmt.Errorf("component %s takes no options", c.Name())
	}
	for name, value := range options {
		if err := cfg.SetOption(name, value); err != nil {
			return err
		}
	}
	return nil
}

// DefaultInputs returns each declared input bound to its port default.
func DefaultInputs(c component.Component) component.Values {
	in := make(component.Values)
	for _, p := range c.Inputs() {
		in[p.Name] = p.Default
	}
	return in
}
