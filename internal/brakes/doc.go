// Package brakes provides thermal and friction models for the pod's
// friction brake pad:
//
//   - [FrictionCoefficient]: empirical friction-vs-speed/temperature curve
//   - [HeatGeneration]: braking power split between pad and track
//   - [HeatConduction]: conductive loss across the contact interface
//   - [HeatConvective]: convective loss to the surrounding fluid
//
// In a full assembly the friction coefficient feeds a braking-force
// calculation whose output feeds HeatGeneration, whose pad-side heat
// rate feeds the two loss models. That wiring lives with the caller;
// each model here evaluates independently.
package brakes
