package config

import "sort"

var Presets = map[string]map[string]*Config{
	"battery": {
		"bench": {
			Component: "battery",
			Inputs:    map[string]float64{"design_time": 1.0, "time_of_flight": 1.0, "design_power": 7.0, "design_current": 1.0},
		},
		"sprint": {
			Component: "battery",
			Inputs:    map[string]float64{"design_time": 0.05, "time_of_flight": 0.1, "design_power": 25000.0, "design_current": 350.0},
			Options:   map[string]float64{"cell_capacity": 3.2, "nominal_voltage": 3.6, "discharge_limit": 0.2},
		},
		"endurance": {
			Component: "battery",
			Inputs:    map[string]float64{"design_time": 0.5, "time_of_flight": 1.5, "design_power": 8000.0, "design_current": 120.0},
			Options:   map[string]float64{"cell_capacity": 3.2, "nominal_voltage": 3.6, "discharge_limit": 0.1},
		},
	},
	"friction_coefficient": {
		"cold": {
			Component: "friction_coefficient",
			Inputs:    map[string]float64{"surface_velocity": 5.0, "temperature": 293.0},
			Options:   map[string]float64{"steady_state_mu": 0.38, "speed_gain": 0.35, "speed_decay": 0.05, "temp_gain": 0.25, "temp_decay": 0.01, "reference_temp": 293.0},
		},
		"high_speed": {
			Component: "friction_coefficient",
			Inputs:    map[string]float64{"surface_velocity": 120.0, "temperature": 550.0},
			Options:   map[string]float64{"steady_state_mu": 0.38, "speed_gain": 0.35, "speed_decay": 0.05, "temp_gain": 0.25, "temp_decay": 0.01, "reference_temp": 293.0},
		},
	},
	"heat_generation": {
		"service_stop": {
			Component: "heat_generation",
			Inputs:    map[string]float64{"braking_force": 4200.0, "surface_velocity": 90.0},
			Options:   map[string]float64{"pad_ratio": 0.5},
		},
		"emergency": {
			Component: "heat_generation",
			Inputs:    map[string]float64{"braking_force": 11000.0, "surface_velocity": 134.0},
			Options:   map[string]float64{"pad_ratio": 0.6},
		},
	},
	"heat_conduction": {
		"hot_pad": {
			Component: "heat_conduction",
			Inputs:    map[string]float64{"pad_temperature": 650.0, "contact_temperature": 350.0, "contact_area": 0.012},
			Options:   map[string]float64{"contact_conductance": 1100.0},
		},
	},
	"heat_convective": {
		"hot_pad": {
			Component: "heat_convective",
			Inputs:    map[string]float64{"pad_temperature": 650.0, "surrounding_temperature": 300.0, "pad_area": 0.03},
			Options:   map[string]float64{"convective_coefficient": 45.0},
		},
	},
	"wheel_stress": {
		"cruise": {
			Component: "wheel_stress",
			Inputs:    map[string]float64{"angular_velocity": 360.0},
		},
		"overspeed": {
			Component: "wheel_stress",
			Inputs:    map[string]float64{"angular_velocity": 900.0},
		},
	},
}

func GetPreset(comp, preset string) *Config {
	compPresets, ok := Presets[comp]
	if !ok {
		return nil
	}
	cfg, ok := compPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(comp string) []string {
	compPresets, ok := Presets[comp]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(compPresets))
	for name := range compPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
