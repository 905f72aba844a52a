package drivetrain

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"

	"github.com/podforge/podmodel/internal/component"
	"github.com/podforge/podmodel/internal/curve"
)

// Reference cell constants for the sizing derivations: gravimetric and
// volumetric energy density of an 18650-class cell, hexagonal packing
// efficiency of cylindrical cells, and a distributor unit price.
const (
	gravimetricDensity = 265.0  // Wh/kg
	volumetricDensity  = 730.0  // Wh/L
	packingEfficiency  = 0.9069 // hexagonal close packing of cylinders
	cellUnitCost       = 12.95  // USD, 1000-unit distributor pricing
)

//go:embed 18650.csv
var referenceCurve []byte

// Battery sizes a battery pack for a mission profile against a
// reference-cell discharge curve: cell count and series/parallel
// arrangement, pack mass, volume, voltage, cost and length.
//
// The discharge curve is re-read and re-fitted on every evaluation. By
// default the embedded 18650 reference table is used; set CurvePath to
// load a different two-column CSV from disk.
type Battery struct {
	DischargeLimit   float64 // fraction of capacity held in reserve (q_l)
	FullVoltage      float64 // fully charged cell voltage (V)
	NominalVoltage   float64 // cell voltage at end of nominal zone (V)
	ExpVoltage       float64 // cell voltage at end of exponential zone (V)
	CellCapacity     float64 // single cell capacity (A*h)
	ExpTime          float64 // time to reach exponential zone (h)
	NominalTime      float64 // time to reach nominal zone (h)
	Resistance       float64 // internal resistance of a cell (Ohm)
	CellMass         float64 // mass of a single cell (g)
	CellHeight       float64 // height of a single cylindrical cell (mm)
	CellDiameter     float64 // diameter of a single cylindrical cell (mm)
	CrossSectionArea float64 // pack cross-sectional area, sets pack length (cm^2)

	CurvePath string // optional discharge-curve CSV; empty uses the embedded table
}

func NewBattery() *Battery {
	return &Battery{
		DischargeLimit:   0.1,
		FullVoltage:      1.4,
		NominalVoltage:   1.2,
		ExpVoltage:       1.27,
		CellCapacity:     3.5,
		ExpTime:          1.0,
		NominalTime:      4.3,
		Resistance:       0.0046,
		CellMass:         170.0,
		CellHeight:       61.0,
		CellDiameter:     33.0,
		CrossSectionArea: 15000.0,
	}
}

// Sizing is the result of one battery sizing evaluation.
type Sizing struct {
	NCells         float64 // total cell count (integer-valued)
	NSeries        float64 // cells stacked for voltage
	NParallel      float64 // strings stacked for current/capacity
	CellVoltage    float64 // curve voltage at the per-cell design discharge (V)
	EnergyCapacity float64 // usable energy of one cell over the mission (Wh)
	OutputVoltage  float64 // pack voltage in the nominal zone (V)
	Mass           float64 // kg
	Volume         float64 // cm^3
	Cost           float64 // USD
	Length         float64 // cm
}

// totalDischarge integrates a constant load profile from t=0 to t=time,
// giving ampere-hours drawn.
func totalDischarge(time, current float64) float64 {
	return time * current
}

func (b *Battery) loadCurve() (*curve.Discharge, error) {
	if b.CurvePath != "" {
		return curve.Load(b.CurvePath)
	}
	return curve.Parse(bytes.NewReader(referenceCurve))
}

func (b *Battery) validate(designTime, timeOfFlight, designPower, designCurrent float64) error {
	positives := []struct {
		name string
		val  float64
	}{
		{"design_time", designTime},
		{"time_of_flight", timeOfFlight},
		{"design_power", designPower},
		{"design_current", designCurrent},
		{"full_voltage", b.FullVoltage},
		{"nominal_voltage", b.NominalVoltage},
		{"exp_voltage", b.ExpVoltage},
		{"cell_capacity", b.CellCapacity},
		{"exp_time", b.ExpTime},
		{"nominal_time", b.NominalTime},
		{"resistance", b.Resistance},
		{"cell_mass", b.CellMass},
		{"cell_height", b.CellHeight},
		{"cell_diameter", b.CellDiameter},
		{"cross_section_area", b.CrossSectionArea},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s=%g", component.ErrNonPositive, p.name, p.val)
		}
	}
	if b.DischargeLimit < 0 || b.DischargeLimit >= 1 {
		return fmt.Errorf("%w: discharge_limit=%g", component.ErrRatioBounds, b.DischargeLimit)
	}
	return nil
}

// Size performs the sizing calculation for a mission profile.
//
// Cell counts are constrained to integers by rounding up. That keeps
// the parallel count away from the near-zero values that blow up the
// output voltage, at the cost of slight oversizing.
func (b *Battery) Size(designTime, timeOfFlight, designPower, designCurrent float64) (*Sizing, error) {
	if err := b.validate(designTime, timeOfFlight, designPower, designCurrent); err != nil {
		return nil, err
	}

	packDischarge := totalDischarge(timeOfFlight, designCurrent)
	nParallel := packDischarge / (b.CellCapacity * (1 - b.DischargeLimit))
	cellCurrent := designCurrent / nParallel
	cellDischarge := totalDischarge(designTime, cellCurrent)

	dis, err := b.loadCurve()
	if err != nil {
		return nil, err
	}

	// Curve depth is tabulated in mAh.
	depth := cellDischarge * 1000
	if depth > dis.MaxDepth() {
		return nil, fmt.Errorf("%w: per-cell discharge %.0f mAh beyond curve end %.0f mAh",
			component.ErrCurveData, depth, dis.MaxDepth())
	}

	cellVoltage := dis.Voltage(depth)
	cellPower := cellVoltage * cellCurrent
	if cellPower <= 0 {
		return nil, fmt.Errorf("%w: cell power %g W at depth %.0f mAh", component.ErrNonPositive, cellPower, depth)
	}

	energyCap, err := dis.Energy(depth)
	if err != nil {
		return nil, err
	}

	nCells := math.Ceil(designPower / cellPower)
	nParallel = math.Ceil(nParallel)
	nSeries := math.Ceil(nCells / nParallel)

	volume := energyCap * nCells / volumetricDensity * 1000 / packingEfficiency

	return &Sizing{
		NCells:         nCells,
		NSeries:        nSeries,
		NParallel:      nParallel,
		CellVoltage:    cellVoltage,
		EnergyCapacity: energyCap,
		OutputVoltage:  nSeries * b.NominalVoltage,
		Mass:           energyCap * nCells / gravimetricDensity,
		Volume:         volume,
		Cost:           nCells * cellUnitCost,
		Length:         volume / b.CrossSectionArea,
	}, nil
}

func (b *Battery) Name() string { return "battery" }

func (b *Battery) Inputs() []component.Port {
	return []component.Port{
		{Name: "design_time", Units: "h", Desc: "time until design power point", Default: 1.0},
		{Name: "time_of_flight", Units: "h", Desc: "total mission time", Default: 1.0},
		{Name: "design_power", Units: "W", Desc: "design power", Default: 7.0},
		{Name: "design_current", Units: "A", Desc: "design current", Default: 1.0},
	}
}

func (b *Battery) Outputs() []component.Port {
	return []component.Port{
		{Name: "n_cells", Units: "-", Desc: "total number of battery cells"},
		{Name: "output_voltage", Units: "V", Desc: "output voltage of battery configuration"},
		{Name: "battery_mass", Units: "kg", Desc: "total mass of cells in battery configuration"},
		{Name: "battery_volume", Units: "cm^3", Desc: "total volume of cells in battery configuration"},
		{Name: "battery_cost", Units: "USD", Desc: "total materials cost of battery configuration"},
		{Name: "battery_length", Units: "cm", Desc: "length of battery"},
	}
}

func (b *Battery) Evaluate(in component.Values) (component.Values, error) {
	designTime, err := in.Get("design_time")
	if err != nil {
		return nil, err
	}
	timeOfFlight, err := in.Get("time_of_flight")
	if err != nil {
		return nil, err
	}
	designPower, err := in.Get("design_power")
	if err != nil {
		return nil, err
	}
	designCurrent, err := in.Get("design_current")
	if err != nil {
		return nil, err
	}
	s, err := b.Size(designTime, timeOfFlight, designPower, designCurrent)
	if err != nil {
		return nil, err
	}
	return component.Values{
		"n_cells":        s.NCells,
		"output_voltage": s.OutputVoltage,
		"battery_mass":   s.Mass,
		"battery_volume": s.Volume,
		"battery_cost":   s.Cost,
		"battery_length": s.Length,
	}, nil
}

func (b *Battery) Options() []component.Port {
	return []component.Port{
		{Name: "discharge_limit", Units: "-", Desc: "discharge limit"},
		{Name: "full_voltage", Units: "V", Desc: "fully charged voltage"},
		{Name: "nominal_voltage", Units: "V", Desc: "voltage at end of nominal zone"},
		{Name: "exp_voltage", Units: "V", Desc: "voltage at end of exponential zone"},
		{Name: "cell_capacity", Units: "A*h", Desc: "single cell capacity"},
		{Name: "exp_time", Units: "h", Desc: "time to reach exponential zone"},
		{Name: "nominal_time", Units: "h", Desc: "time to reach nominal zone"},
		{Name: "resistance", Units: "Ohm", Desc: "internal resistance of a cell"},
		{Name: "cell_mass", Units: "g", Desc: "mass of a single cell"},
		{Name: "cell_height", Units: "mm", Desc: "height of a single cylindrical cell"},
		{Name: "cell_diameter", Units: "mm", Desc: "diameter of a single cylindrical cell"},
		{Name: "cross_section_area", Units: "cm^2", Desc: "pack cross-sectional area used to compute length"},
	}
}

func (b *Battery) GetOptions() map[string]float64 {
	return map[string]float64{
		"discharge_limit":    b.DischargeLimit,
		"full_voltage":       b.FullVoltage,
		"nominal_voltage":    b.NominalVoltage,
		"exp_voltage":        b.ExpVoltage,
		"cell_capacity":      b.CellCapacity,
		"exp_time":           b.ExpTime,
		"nominal_time":       b.NominalTime,
		"resistance":         b.Resistance,
		"cell_mass":          b.CellMass,
		"cell_height":        b.CellHeight,
		"cell_diameter":      b.CellDiameter,
		"cross_section_area": b.CrossSectionArea,
	}
}

func (b *Battery) SetOption(name string, value float64) error {
	switch name {
	case "discharge_limit":
		b.DischargeLimit = value
	case "full_voltage":
		b.FullVoltage = value
	case "nominal_voltage":
		b.NominalVoltage = value
	case "exp_voltage":
		b.ExpVoltage = value
	case "cell_capacity":
		b.CellCapacity = value
	case "exp_time":
		b.ExpTime = value
	case "nominal_time":
		b.NominalTime = value
	case "resistance":
		b.Resistance = value
	case "cell_mass":
		b.CellMass = value
	case "cell_height":
		b.CellHeight = value
	case "cell_diameter":
		b.CellDiameter = value
	case "cross_section_area":
		b.CrossSectionArea = value
	default:
		return fmt.Errorf("%w: %s", component.ErrUnknownOption, name)
	}
	return nil
}

// ReferenceCurve parses the embedded 18650 discharge table.
func ReferenceCurve() (*curve.Discharge, error) {
	return curve.Parse(bytes.NewReader(referenceCurve))
}
