// Package matrix implements the small dense complex matrices the hyperbolic
// isometry engine is built on.
//
// The matrix package provides:
//
//   - Square - an immutable complex matrix of order 2 or 3, the two orders
//     in which isometry groups of the hyperbolic plane are represented
//     (2x2 for the half-plane and disk models, 3x3 for the Klein and
//     hyperboloid models).
//   - Closed-form arithmetic: Mul, Add, Sub, Scale, Conj, Transpose, Det,
//     Trace, Inverse, Pow. Every operation returns a new value; a Square is
//     never mutated after construction.
//   - Eigen2 - eigen decomposition of an order-2 matrix, ordered by
//     descending eigenvalue modulus, with a numerically robust fallback
//     (gonum's mat.Eigen) when the closed-form eigenvectors degenerate.
//
// Determinism: all operations are pure functions of their inputs; there is
// no randomness, no map iteration, and no global state. Equality and
// singularity checks use the package-wide Epsilon tolerance.
//
// Error policy: conditions reachable from user input (bad construction
// shape, singular inverse) return sentinel errors from errors.go. Indexing
// a fixed-order value out of range, or mixing orders in arithmetic, is a
// programmer error and panics, in line with gonum's convention for shape
// violations.
//
// Complexity: with orders fixed at 2 and 3, every operation is O(1) time
// and memory except Pow (O(log n) multiplications).
package matrix
