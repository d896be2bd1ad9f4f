// Package isometry wraps a matrix tagged with a hyperbolic model into an
// immutable Isometry value and answers the geometric questions about it:
// classification, translation length, fixed points, axis, and the inverse
// construction from a prescribed pair of fixed points.
//
// What it does:
//   - Classification runs the canonical trace/determinant test on the
//     upper half-plane representation; isometries of the other three
//     models convert their matrix once (cached) and reuse the same
//     formulas. The six classes are identity, elliptic, parabolic,
//     hyperbolic, reflection and orientation-reversing hyperbolic.
//   - Fixed points come from closed forms where the class admits them and
//     from the ordered eigen decomposition otherwise; results are mapped
//     back into the isometry's own model.
//   - FromFixedPoints inverts the process: given a repelling and an
//     attracting ideal point it builds the unique hyperbolic isometry
//     (up to projective sign) with that boundary dynamics.
//
// Determinism: every operation is a pure function of the wrapped matrix.
// The only mutable state is the once-computed upper half-plane
// representation, initialized under sync.Once, so values are safe for
// concurrent readers.
//
// Error policy: sentinel errors (ErrNotHyperbolic, ErrUndefinedFixedPoint,
// ErrNonIdealPoint, ErrCoincidentPoints, ErrClassification) are returned
// wrapped with call-site context; inspect with errors.Is. Classification
// never falls through silently: a matrix escaping every branch reports
// ErrClassification.
//
// Complexity: all operations are O(1) fixed-size matrix arithmetic.
package isometry
