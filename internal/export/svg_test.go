package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeriesToSVG(t *testing.T) {
	xs := []float64{0, 10, 20, 30}
	ys := []float64{0.9, 0.7, 0.55, 0.45}

	svg := SeriesToSVG(xs, ys, 800, 400, "#00ff00", "surface_velocity", "friction_coefficient")
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, "<path") || !strings.Contains(svg, "surface_velocity") {
		t.Error("missing path or axis label")
	}
}

func TestSeriesToSVGDegenerate(t *testing.T) {
	if svg := SeriesToSVG([]float64{1}, []float64{1}, 800, 400, "#fff", "x", "y"); svg != "" {
		t.Error("expected empty svg for a single point")
	}
	if svg := SeriesToSVG([]float64{1, 2}, []float64{1}, 800, 400, "#fff", "x", "y"); svg != "" {
		t.Error("expected empty svg for mismatched lengths")
	}

	// Flat series must not divide by a zero range.
	svg := SeriesToSVG([]float64{1, 2, 3}, []float64{5, 5, 5}, 800, 400, "#fff", "x", "y")
	if svg == "" || strings.Contains(svg, "NaN") {
		t.Error("flat series should render without NaN coordinates")
	}
}

func TestWriteSeriesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.svg")
	if err := WriteSeriesSVG(path, []float64{0, 1, 2}, []float64{3, 2, 1}, "x", "y"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("written file is not a complete svg")
	}

	if err := WriteSeriesSVG(filepath.Join(t.TempDir(), "bad.svg"), []float64{1}, []float64{1}, "x", "y"); err == nil {
		t.Error("expected error for degenerate series")
	}
}
