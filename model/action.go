// Package model: the action of an isometry matrix on a point of its model.
package model

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/hyplane/matrix"
)

// pdSwap post-composes a disk representative with the axis swap; see
// applyPD.
var pdSwap = matrix.NewReal2(0, 1, 1, 0)

// Apply acts with the isometry matrix M on point p. M must be a valid
// isometry of model m (see ValidateIsometry; not revalidated here) and p
// must live in m, otherwise ErrModelMismatch.
//
//	UHP - Moebius transformation, with the argument conjugated first when
//	      det M < 0; infinity maps to a/c (or stays at infinity if c = 0).
//	PD  - Moebius transformation for the U(1,1) shape; the stored
//	      orientation-reversing representative acts as
//	      w -> moebius(M*swap, conj w).
//	KM  - projective action: homogenize to (x, y, 1), apply, rescale.
//	HM  - plain matrix-vector product on the hyperboloid vector.
//
// Complexity: O(1).
func Apply(m Model, M matrix.Square, p Point) (Point, error) {
	if !m.Valid() {
		return Point{}, ErrUnknownModel
	}
	if p.Model() != m {
		return Point{}, fmt.Errorf("Apply in %v to a point of %v: %w", m, p.Model(), ErrModelMismatch)
	}
	switch m {
	case UHP:
		return applyUHP(M, p), nil
	case PD:
		return applyPD(M, p), nil
	case KM:
		return applyKM(M, p), nil
	default:
		return applyHM(M, p), nil
	}
}

func applyUHP(M matrix.Square, p Point) Point {
	var (
		a, b = M.At(0, 0), M.At(0, 1)
		c, d = M.At(1, 0), M.At(1, 1)
	)
	if p.IsInfinity() {
		if cmplx.Abs(c) < matrix.Epsilon {
			return Infinity()
		}
		return pointUHP(a / c)
	}
	var z = p.Complex()
	if real(M.Det()) < 0 {
		z = cmplx.Conj(z)
	}
	var den = c*z + d
	if cmplx.Abs(den) < matrix.Epsilon {
		return Infinity()
	}
	return pointUHP((a*z + b) / den)
}

// applyPD covers both orientations. The reversing branch is the disk-side
// mirror of the UHP conj-then-Moebius rule: conjugating the UHP argument
// corresponds on the disk to conjugating w and swapping the matrix's
// columns, i.e. acting with M*pdSwap on conj w.
func applyPD(M matrix.Square, p Point) Point {
	if pdShape(M) {
		return pointPD(moebius(M, p.Complex()))
	}
	return pointPD(moebius(M.Mul(pdSwap), cmplx.Conj(p.Complex())))
}

func applyKM(M matrix.Square, p Point) Point {
	var (
		x, y = p.XY()
		w    = mulVec3(M, [3]float64{x, y, 1})
	)
	return pointKM(w[0]/w[2], w[1]/w[2])
}

func applyHM(M matrix.Square, p Point) Point {
	var w = mulVec3(M, p.Vec())
	return pointHM(w[0], w[1], w[2])
}

// moebius is the fractional linear action of a 2x2 matrix on a finite
// complex argument.
func moebius(M matrix.Square, z complex128) complex128 {
	return (M.At(0, 0)*z + M.At(0, 1)) / (M.At(1, 0)*z + M.At(1, 1))
}

// mulVec3 multiplies the real part of an order-3 matrix with a 3-vector.
func mulVec3(M matrix.Square, v [3]float64) [3]float64 {
	var (
		out [3]float64
		i   int
	)
	for i = 0; i < 3; i++ {
		out[i] = real(M.At(i, 0))*v[0] + real(M.At(i, 1))*v[1] + real(M.At(i, 2))*v[2]
	}
	return out
}
