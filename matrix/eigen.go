// SPDX-License-Identifier: MIT

// Package matrix: ordered eigen decomposition for order-2 matrices.
// The closed form covers every matrix the isometry engine produces; the
// gonum fallback catches the degenerate cases where both closed-form
// eigenvector candidates collapse below the numeric tolerance.
package matrix

import (
	"fmt"
	"math/cmplx"

	gmat "gonum.org/v1/gonum/mat"
)

// Eigen2 computes the eigenvalues of an order-2 matrix ordered by
// descending modulus, together with matching right eigenvectors (p, q)
// (unnormalized; callers consume them projectively as p/q).
//
// Contracts:
//   - m must have order 2 (ErrBadOrder otherwise).
//   - values[0] is the eigenvalue of larger modulus, values[1] the smaller;
//     vectors[k] belongs to values[k].
//
// The closed form (characteristic polynomial plus the two eigenvector
// candidates per eigenvalue) is tried first. When every candidate's norm
// falls below Epsilon relative to the matrix scale, the decomposition is
// retried with gonum's numerically robust mat.Eigen; that path requires a
// real matrix and reports ErrNoEigen otherwise.
//
// Complexity: O(1) for the closed form; the fallback is a 2x2 QR
// factorization, constant-time for this fixed order.
func Eigen2(m Square) (values [2]complex128, vectors [2][2]complex128, err error) {
	// Stage 1 - validate.
	if m.Order() != 2 {
		return values, vectors, ErrBadOrder
	}

	// Stage 2 - closed form from the characteristic polynomial.
	var (
		a, b  = m.At(0, 0), m.At(0, 1)
		c, d  = m.At(1, 0), m.At(1, 1)
		tr    = a + d
		disc  = cmplx.Sqrt(tr*tr - 4*(a*d-b*c))
		scale = m.MaxNorm()
	)
	if scale < 1 {
		scale = 1
	}
	values[0] = (tr + disc) / 2
	values[1] = (tr - disc) / 2
	if modulus(values[1]) > modulus(values[0]) {
		values[0], values[1] = values[1], values[0]
	}

	var (
		k          int
		u, v, best [2]complex128
		degenerate bool
	)
	for k = 0; k < 2; k++ {
		// Two candidate eigenvectors per eigenvalue; either may vanish,
		// both vanish only for (near-)scalar matrices.
		u = [2]complex128{b, values[k] - a}
		v = [2]complex128{values[k] - d, c}
		best = u
		if vecNorm(v) > vecNorm(u) {
			best = v
		}
		if vecNorm(best) <= Epsilon*scale {
			degenerate = true
			break
		}
		vectors[k] = best
	}
	if !degenerate {
		return values, vectors, nil
	}

	// Stage 3 - numerically robust retry.
	return eigen2Robust(m)
}

// eigen2Robust delegates to gonum's dense eigen solver. Only real matrices
// reach this path in practice (the engine's computation model is real 2x2);
// complex input is rejected rather than silently mishandled.
func eigen2Robust(m Square) (values [2]complex128, vectors [2][2]complex128, err error) {
	if !m.IsReal(Epsilon) {
		return values, vectors, fmt.Errorf("Eigen2: degenerate complex matrix: %w", ErrNoEigen)
	}

	var (
		dense = gmat.NewDense(2, 2, []float64{
			real(m.At(0, 0)), real(m.At(0, 1)),
			real(m.At(1, 0)), real(m.At(1, 1)),
		})
		eig gmat.Eigen
	)
	if ok := eig.Factorize(dense, gmat.EigenRight); !ok {
		return values, vectors, fmt.Errorf("Eigen2: robust factorization failed: %w", ErrNoEigen)
	}

	var (
		vals = eig.Values(nil)
		vecs gmat.CDense
	)
	eig.VectorsTo(&vecs)
	values[0], values[1] = vals[0], vals[1]
	vectors[0] = [2]complex128{vecs.At(0, 0), vecs.At(1, 0)}
	vectors[1] = [2]complex128{vecs.At(0, 1), vecs.At(1, 1)}
	if modulus(values[1]) > modulus(values[0]) {
		values[0], values[1] = values[1], values[0]
		vectors[0], vectors[1] = vectors[1], vectors[0]
	}
	return values, vectors, nil
}

// vecNorm is the max-modulus norm of a candidate eigenvector.
func vecNorm(v [2]complex128) float64 {
	var p, q = modulus(v[0]), modulus(v[1])
	if q > p {
		return q
	}
	return p
}
