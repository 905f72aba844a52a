// Package drivetrain sizes the pod's battery pack.
//
// [Battery] turns a mission profile (design time, time of flight,
// design power, design current) into a cell count, series/parallel
// arrangement, and the pack mass, volume, voltage, cost and length,
// using a reference-cell discharge curve fitted and integrated per
// evaluation.
package drivetrain
