// Package model defines the four coordinate models of the hyperbolic plane
// and everything that depends on the choice of model: point and geodesic
// values, matrix validity tests, closed-form conversion of points and
// isometry matrices between models, and the action of an isometry matrix on
// a point.
//
// # What
//
//   - Model - enum {UHP, PD, KM, HM} with a process-wide, read-only
//     descriptor registry: matrix order (2 for UHP/PD, 3 for KM/HM) and
//     projectivity (M and -M represent the same isometry in every model
//     except HM).
//   - Point / Geodesic - immutable values tagged with their model. UHP and
//     PD points carry a complex coordinate (UHP additionally has the
//     distinguished point at infinity), KM points a planar pair inside the
//     unit disk, HM points a 3-vector on the hyperboloid sheet or, for
//     ideal points, on the light cone normalized to third coordinate 1.
//   - ValidateIsometry - the per-model matrix membership test: real with
//     non-zero determinant (UHP), the U(1,1) shape up to a factor of i
//     (PD), Lorentz form preservation M^T J M = J with J = diag(1,1,-1)
//     (KM, HM).
//   - ConvertPoint / ConvertMatrix - closed-form conversions between any
//     two models, routed through the UHP computation model (KM and HM
//     share their 3x3 representation, so that leg is the identity).
//   - Apply - the isometry action on points: Moebius transformation on
//     UHP/PD (with the conjugated argument for orientation-reversing UHP
//     matrices), projective action on KM, plain matrix-vector product on HM.
//
// # Why
//
// Classification and the fixed-point algebra (package isometry) are only
// written once, against UHP; every other model participates by converting
// its matrix in and its points back out. That keeps the per-model surface
// of this package purely algebraic: validity, conversion, action.
//
// # Determinism
//
// All functions are pure. The registry is a compile-time array; nothing in
// this package allocates global state or reads the environment. Numeric
// comparisons use matrix.Epsilon; values within the tolerance of a boundary
// are treated as exactly on it.
//
// # Errors
//
// Sentinels live in types.go: ErrUnknownModel, ErrInvalidIsometry,
// ErrInvalidPoint, ErrModelMismatch. See each operation's doc comment for
// the sentinels it can return.
package model
