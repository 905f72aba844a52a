package config

import (
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Component != "battery" {
		t.Errorf("expected component battery, got %s", cfg.Component)
	}
	if cfg.Inputs == nil || cfg.Options == nil {
		t.Error("input and option maps should be initialized")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("battery", "endurance")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Component != "battery" {
		t.Errorf("expected component battery, got %s", cfg.Component)
	}
	if cfg.Inputs["time_of_flight"] != 1.5 {
		t.Errorf("expected time_of_flight 1.5, got %f", cfg.Inputs["time_of_flight"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("battery", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "endurance"); cfg != nil {
		t.Error("expected nil for nonexistent component")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("friction_coefficient")
	if len(presets) == 0 {
		t.Error("expected presets for friction_coefficient")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent component")
	}
}

func TestListPresetsSorted(t *testing.T) {
	presets := ListPresets("battery")
	if !sort.StringsAreSorted(presets) {
		t.Errorf("preset names should be sorted, got %v", presets)
	}
}

func TestPresetsNameTheirComponent(t *testing.T) {
	for comp, scenarios := range Presets {
		for name, cfg := range scenarios {
			if cfg.Component != comp {
				t.Errorf("preset %s/%s names component %s", comp, name, cfg.Component)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eval.yaml")

	cfg := &Config{
		Component: "heat_conduction",
		Inputs:    map[string]float64{"pad_temperature": 650, "contact_temperature": 350, "contact_area": 0.012},
		Options:   map[string]float64{"contact_conductance": 1100},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Component != cfg.Component {
		t.Errorf("expected %s, got %s", cfg.Component, loaded.Component)
	}
	if loaded.Inputs["pad_temperature"] != 650 {
		t.Errorf("expected pad_temperature 650, got %f", loaded.Inputs["pad_temperature"])
	}
	if loaded.Options["contact_conductance"] != 1100 {
		t.Errorf("expected contact_conductance 1100, got %f", loaded.Options["contact_conductance"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
