// SPDX-License-Identifier: MIT

// Package isometry: trace/determinant classification and translation
// length, computed on the upper half-plane representation.
package isometry

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

// Classification computes the geometric type of the isometry. The result
// is a pure function of the matrix, invariant under scaling by any
// non-zero scalar, so callers may cache it freely.
func (iso *Isometry) Classification() (Class, error) {
	return classifyMatrix(methods[iso.model].computeMatrix(iso))
}

// IsIdentity reports whether the isometry is the identity transformation
// (within tolerance, and up to sign in the projective models).
func (iso *Isometry) IsIdentity() bool {
	c, err := iso.Classification()
	return err == nil && c == Identity
}

// OrientationPreserving reports whether the isometry preserves
// orientation, read off its native matrix.
func (iso *Isometry) OrientationPreserving() bool {
	return model.OrientationPreserving(iso.model, iso.mat)
}

// TranslationLength returns the distance the isometry shifts points of
// its axis. A hyperbolic element of normalized trace tau moves by
// 2*arccosh(tau/2); an orientation-reversing hyperbolic satisfies
// tau = 2*sinh(l/2) instead, so its length is 2*arcsinh(tau/2). Any other
// class reports ErrNotHyperbolic.
func (iso *Isometry) TranslationLength() (float64, error) {
	var A = methods[iso.model].computeMatrix(iso)
	cls, err := classifyMatrix(A)
	if err != nil {
		return 0, err
	}
	var _, _, tau = normalized(A)
	switch cls {
	case Hyperbolic:
		return 2 * math.Acosh(tau/2), nil
	case OrientationReversingHyperbolic:
		return 2 * math.Asinh(tau/2), nil
	default:
		return 0, fmt.Errorf("TranslationLength of a %v isometry: %w", cls, ErrNotHyperbolic)
	}
}

// classifyMatrix is the canonical test on a 2x2 computation matrix A.
// With M = A/sqrt(|det A|) and tau = |tr M|:
//
//	det > 0: M within Epsilon of +I or -I -> Identity; tau < 2-Epsilon ->
//	Elliptic; |tau-2| < Epsilon -> Parabolic; tau > 2+Epsilon ->
//	Hyperbolic.
//	det < 0: tau < Epsilon -> Reflection; else
//	OrientationReversingHyperbolic.
//
// Ties break toward the more degenerate class. The residual branch (a tau
// landing exactly on a gap between the guards) returns ErrClassification
// rather than defaulting.
func classifyMatrix(A matrix.Square) (Class, error) {
	var det = real(A.Det())
	if math.Abs(det) < matrix.Epsilon {
		return 0, fmt.Errorf("classify: determinant %s vanishes: %w", matrix.FormatEntry(A.Det()), ErrClassification)
	}

	var m, _, tau = normalized(A)
	if det < 0 {
		if tau < matrix.Epsilon {
			return Reflection, nil
		}
		return OrientationReversingHyperbolic, nil
	}

	switch {
	case m.Dist(matrix.Identity2()) < matrix.Epsilon || m.Dist(matrix.Identity2().Neg()) < matrix.Epsilon:
		return Identity, nil
	case tau < 2-matrix.Epsilon:
		return Elliptic, nil
	case math.Abs(tau-2) < matrix.Epsilon:
		return Parabolic, nil
	case tau > 2+matrix.Epsilon:
		return Hyperbolic, nil
	default:
		return 0, fmt.Errorf("classify: tau = %g escaped every branch: %w", tau, ErrClassification)
	}
}

// normalized scales A to |det| = 1 and returns the scaled matrix, the
// original determinant and tau = |tr|. Callers guard det != 0 first.
func normalized(A matrix.Square) (m matrix.Square, det float64, tau float64) {
	det = real(A.Det())
	m = A.Scale(complex(1/math.Sqrt(math.Abs(det)), 0))
	return m, det, cmplx.Abs(m.Trace())
}
