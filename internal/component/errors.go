package component

import "errors"

// Domain errors for component evaluation.
var (
	// ErrMissingInput indicates a required input binding was not supplied.
	ErrMissingInput = errors.New("component: missing input")

	// ErrUnknownOption indicates an option name the component does not declare.
	ErrUnknownOption = errors.New("component: unknown option")

	// ErrNonPositive indicates a quantity that must be strictly positive.
	ErrNonPositive = errors.New("component: value must be positive")

	// ErrTemperatureOrder indicates a pad temperature at or below the sink
	// temperature, for which the heat-loss models do not apply.
	ErrTemperatureOrder = errors.New("component: pad temperature must exceed sink temperature")

	// ErrRatioBounds indicates a split ratio outside the open interval (0,1).
	ErrRatioBounds = errors.New("component: ratio must lie strictly between 0 and 1")

	// ErrCurveData indicates a malformed or unusable discharge-curve table.
	ErrCurveData = errors.New("component: invalid discharge curve data")
)
