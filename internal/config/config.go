package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config names a component and binds its inputs and options for one
// evaluation.
type Config struct {
	Component string             `yaml:"component"`
	Curve     string             `yaml:"curve,omitempty"`
	Inputs    map[string]float64 `yaml:"inputs,omitempty"`
	Options   map[string]float64 `yaml:"options,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Component: "battery",
		Inputs:    map[string]float64{},
		Options:   map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
