package curve

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/interp"

	"github.com/podforge/podmodel/internal/component"
)

// quadNodes is the number of Gauss-Legendre nodes used for the energy
// integral. The fitted curve is smooth and slowly varying, so a modest
// fixed rule is well within the accuracy of the underlying table.
const quadNodes = 40

// Discharge is an empirical voltage-vs-depth-of-discharge table for a
// reference cell, with a fitted 1-D interpolant over it.
//
// Depth is in mAh drawn from the cell, voltage in V. Depths must be
// strictly increasing and voltages positive.
type Discharge struct {
	Depths []float64
	Volts  []float64

	spline interp.AkimaSpline
	fitted bool
}

// Load reads a two-column CSV (depth mAh, voltage V, no header) from
// path and fits the interpolant.
func Load(path string) (*Discharge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse reads the two-column CSV from r and fits the interpolant.
func Parse(r io.Reader) (*Discharge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	d := &Discharge{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", component.ErrCurveData, err)
		}
		depth, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad depth %q", component.ErrCurveData, rec[0])
		}
		volt, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad voltage %q", component.ErrCurveData, rec[1])
		}
		d.Depths = append(d.Depths, depth)
		d.Volts = append(d.Volts, volt)
	}

	if err := d.Fit(); err != nil {
		return nil, err
	}
	return d, nil
}

// Fit validates the table and fits the interpolant. Parse and Load call
// it automatically; call it again only after editing the table in place.
func (d *Discharge) Fit() error {
	if len(d.Depths) < 3 || len(d.Depths) != len(d.Volts) {
		return fmt.Errorf("%w: need at least 3 rows, got %d", component.ErrCurveData, len(d.Depths))
	}
	for i, depth := range d.Depths {
		if i > 0 && depth <= d.Depths[i-1] {
			return fmt.Errorf("%w: depths not strictly increasing at row %d", component.ErrCurveData, i)
		}
		if d.Volts[i] <= 0 {
			return fmt.Errorf("%w: non-positive voltage at row %d", component.ErrCurveData, i)
		}
	}
	if err := d.spline.Fit(d.Depths, d.Volts); err != nil {
		return fmt.Errorf("%w: %v", component.ErrCurveData, err)
	}
	d.fitted = true
	return nil
}

// Voltage evaluates the fitted curve at the given depth of discharge (mAh).
func (d *Discharge) Voltage(depth float64) float64 {
	return d.spline.Predict(depth)
}

// Energy integrates the fitted curve from zero to depth (mAh) and
// returns the drawn energy in Wh.
func (d *Discharge) Energy(depth float64) (float64, error) {
	if !d.fitted {
		return 0, fmt.Errorf("%w: curve not fitted", component.ErrCurveData)
	}
	if depth < 0 {
		return 0, fmt.Errorf("%w: negative depth %g", component.ErrCurveData, depth)
	}
	if depth == 0 {
		return 0, nil
	}
	// V integrated over mAh gives mWh.
	mwh := quad.Fixed(d.spline.Predict, 0, depth, quadNodes, nil, 0)
	return mwh / 1000, nil
}

// MaxDepth returns the last tabulated depth (mAh).
func (d *Discharge) MaxDepth() float64 {
	if len(d.Depths) == 0 {
		return 0
	}
	return d.Depths[len(d.Depths)-1]
}
