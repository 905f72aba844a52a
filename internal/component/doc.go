// Package component defines the evaluation boundary shared by all
// analysis components in this repository.
//
// A component is a pure, stateless function from named scalar inputs to
// named scalar outputs:
//
//   - [Values]: named scalar bindings
//   - [Port]: a declared input, output, or option with units
//   - [Component]: the evaluation interface
//   - [Configurable]: runtime option adjustment
//
// Components declare physical preconditions and return sentinel errors
// (wrapped with context) instead of producing out-of-range results.
// There is no shared state between evaluations; callers may evaluate the
// same component concurrently as long as options are not mutated.
package component
