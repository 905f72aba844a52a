package storage

import (
	"testing"
)

func TestSaveLoadRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	inputs := map[string]float64{"braking_force": 4200, "surface_velocity": 90}
	options := map[string]float64{"pad_ratio": 0.5}
	outputs := map[string]float64{"heat_rate_pad": 189000, "heat_rate_track": 189000}

	runID, err := st.Save("heat_generation", inputs, options, outputs)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Component != "heat_generation" {
		t.Errorf("expected component heat_generation, got %s", meta.Component)
	}
	if meta.Inputs["braking_force"] != 4200 {
		t.Errorf("expected braking_force 4200, got %f", meta.Inputs["braking_force"])
	}
	if meta.Outputs["heat_rate_pad"] != 189000 {
		t.Errorf("expected heat_rate_pad 189000, got %f", meta.Outputs["heat_rate_pad"])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := st.Save("battery", nil, nil, map[string]float64{"n_cells": 4}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save("wheel_stress", nil, nil, map[string]float64{"max_stress": 1e6}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/never-created")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestSeriesRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("friction_coefficient", nil, nil, map[string]float64{})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	xs := []float64{0, 10, 20, 30}
	ys := []float64{0.9, 0.7, 0.55, 0.45}
	if err := st.SaveSeries(runID, "surface_velocity", "friction_coefficient", xs, ys); err != nil {
		t.Fatalf("save series failed: %v", err)
	}

	gotX, gotY, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(gotX) != len(xs) || len(gotY) != len(ys) {
		t.Fatalf("expected %d points, got %d/%d", len(xs), len(gotX), len(gotY))
	}
	for i := range xs {
		if gotX[i] != xs[i] || gotY[i] != ys[i] {
			t.Errorf("point %d: expected (%g,%g), got (%g,%g)", i, xs[i], ys[i], gotX[i], gotY[i])
		}
	}
}

func TestSaveSeriesLengthMismatch(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("friction_coefficient", nil, nil, map[string]float64{})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := st.SaveSeries(runID, "x", "y", []float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched series lengths")
	}
}
