// Package model: per-model isometry membership tests.
package model

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/hyplane/matrix"
)

// lorentzJ is the bilinear form the 3x3 models preserve.
var lorentzJ = matrix.NewReal3(1, 0, 0, 0, 1, 0, 0, 0, -1)

// ValidateIsometry reports whether M represents an isometry of model m:
//
//	UHP - real 2x2 with |det| > Epsilon;
//	PD  - the U(1,1) shape [[a, b], [conj b, conj a]], on M itself with
//	      |a| > |b| (orientation-preserving) or on i*M with |b| > |a|
//	      (orientation-reversing); both inequalities keep the Moebius
//	      action inside the disk;
//	KM, HM - real 3x3 with M^T J M = J within Epsilon, J = diag(1,1,-1);
//	         HM additionally requires the upper sheet preserved
//	         (entry (2,2) positive).
//
// Returns nil on success, ErrUnknownModel for an unregistered model, and
// ErrInvalidIsometry (wrapped with the failing condition) otherwise.
func ValidateIsometry(m Model, M matrix.Square) error {
	if !m.Valid() {
		return ErrUnknownModel
	}
	if M.Order() != m.Dim() {
		return fmt.Errorf("ValidateIsometry(%v): matrix order %d, want %d: %w",
			m, M.Order(), m.Dim(), ErrInvalidIsometry)
	}

	switch m {
	case UHP:
		if !M.IsReal(matrix.Epsilon) {
			return fmt.Errorf("ValidateIsometry(UHP): entries must be real: %w", ErrInvalidIsometry)
		}
		if cmplx.Abs(M.Det()) < matrix.Epsilon {
			return fmt.Errorf("ValidateIsometry(UHP): determinant vanishes: %w", ErrInvalidIsometry)
		}
	case PD:
		if !pdShape(M) && !pdShapeReversing(M) {
			return fmt.Errorf("ValidateIsometry(PD): not of U(1,1) shape up to a factor of i: %w", ErrInvalidIsometry)
		}
	default: // KM, HM
		if !M.IsReal(matrix.Epsilon) {
			return fmt.Errorf("ValidateIsometry(%v): entries must be real: %w", m, ErrInvalidIsometry)
		}
		if M.Transpose().Mul(lorentzJ).Mul(M).Dist(lorentzJ) > matrix.Epsilon {
			return fmt.Errorf("ValidateIsometry(%v): does not preserve the Lorentz form: %w", m, ErrInvalidIsometry)
		}
		// KM is projective, so a sheet-swapping representative still names
		// an isometry (the canonical representative has entry (2,2) >= 1).
		// HM matrices act on the upper sheet directly and must keep it.
		if m == HM && real(M.At(2, 2)) < 0 {
			return fmt.Errorf("ValidateIsometry(HM): swaps the hyperboloid sheets: %w", ErrInvalidIsometry)
		}
	}
	return nil
}

// pdShape is the orientation-preserving U(1,1) membership test: second
// row the conjugate mirror of the first, and |a| > |b| so the Moebius
// action keeps the disk (the mirror shape with |a| < |b| swaps the disk
// with its exterior).
func pdShape(M matrix.Square) bool {
	var (
		a, b = M.At(0, 0), M.At(0, 1)
		c, d = M.At(1, 0), M.At(1, 1)
	)
	return cmplx.Abs(c-cmplx.Conj(b)) < matrix.Epsilon &&
		cmplx.Abs(d-cmplx.Conj(a)) < matrix.Epsilon &&
		cmplx.Abs(a) > cmplx.Abs(b)+matrix.Epsilon
}

// pdShapeReversing tests the orientation-reversing representative: i*M
// carries the conjugate-mirror shape [[a, b], [conj a, conj b]]-wise,
// and the swapped-column action preserves the disk exactly when
// |b| > |a| there.
func pdShapeReversing(M matrix.Square) bool {
	var (
		s    = M.Scale(1i)
		a, b = s.At(0, 0), s.At(0, 1)
		c, d = s.At(1, 0), s.At(1, 1)
	)
	return cmplx.Abs(c-cmplx.Conj(b)) < matrix.Epsilon &&
		cmplx.Abs(d-cmplx.Conj(a)) < matrix.Epsilon &&
		cmplx.Abs(b) > cmplx.Abs(a)+matrix.Epsilon
}

// OrientationPreserving reports whether a valid isometry matrix of model m
// preserves orientation. For UHP and HM this is the determinant sign; for
// PD it is the U(1,1) shape on M itself; for KM the sign is read off the
// upper-sheet representative, because det does not descend to the
// projective quotient on its own.
func OrientationPreserving(m Model, M matrix.Square) bool {
	switch m {
	case UHP:
		return real(M.Det()) > 0
	case PD:
		return pdShape(M)
	case KM:
		return real(sheetCanonical(M).Det()) > 0
	case HM:
		return real(M.Det()) > 0
	default:
		return false
	}
}
