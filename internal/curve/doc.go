// Package curve loads and evaluates battery discharge curves.
//
// A discharge curve tabulates cell voltage against cumulative depth of
// discharge (mAh). The package fits an Akima interpolant over the table
// and exposes point evaluation and the definite energy integral used by
// battery sizing.
package curve
