// Package model: closed-form conversion of isometry matrices between
// models. UHP is the hub; the two legs are the Cayley conjugation
// (UHP<->PD) and the SL(2,R) -> SO(2,1) double cover with its section
// (UHP<->KM/HM). KM and HM share the 3x3 representation.
package model

import (
	"math"

	"github.com/katalvlaran/hyplane/matrix"
)

// Cayley conjugators for UHP<->PD and the orientation companions of the
// double cover. All four are fixed elements, never mutated.
var (
	cayley    = matrix.New2(1, -1i, -1i, 1)
	cayleyInv = matrix.New2(1, 1i, 1i, 1).Scale(0.5)
	compR     = matrix.NewReal2(-1, 0, 0, 1)
	compS     = matrix.NewReal3(-1, 0, 0, 0, 1, 0, 0, 0, 1)
)

// ConvertMatrix rewrites an isometry matrix of model from into the matrix
// of the same abstract isometry in model to. The conversion is purely
// algebraic (conjugation or the double-cover closed forms); it is never
// re-derived from the action on points.
//
// Contracts:
//   - M must already be a valid isometry of from (see ValidateIsometry);
//     the function does not revalidate.
//   - For projective sources the result is one representative; callers
//     comparing results use mod-sign equality.
//
// Returns ErrUnknownModel for an unregistered model. Complexity: O(1).
func ConvertMatrix(from, to Model, M matrix.Square) (matrix.Square, error) {
	if !from.Valid() || !to.Valid() {
		return matrix.Square{}, ErrUnknownModel
	}
	if from == to {
		return M, nil
	}

	// Stage 1 - the shared SO(2,1) leg: KM<->HM is the identity up to the
	// upper-sheet sign canonicalization HM requires.
	if (from == KM && to == HM) || (from == HM && to == KM) {
		return sheetCanonical(M), nil
	}

	// Stage 2 - route through the UHP computation model.
	var u = M
	switch from {
	case PD:
		u = pdToUHP(M)
	case KM, HM:
		u = so21ToSL2R(M)
	}
	switch to {
	case UHP:
		return u, nil
	case PD:
		return uhpToPD(u), nil
	default: // KM, HM
		return sl2rToSO21(u), nil
	}
}

// sheetCanonical flips the sign of a 3x3 representative so it preserves
// the upper hyperboloid sheet (entry (2,2) positive; Lorentz matrices
// never have |m33| < 1).
func sheetCanonical(M matrix.Square) matrix.Square {
	if real(M.At(2, 2)) < 0 {
		return M.Neg()
	}
	return M
}

// uhpToPD conjugates a real 2x2 matrix into the disk model. An
// orientation-reversing input (negative determinant) is premultiplied by i
// so the result lands in the i*U(1,1) shape the PD validity test accepts.
func uhpToPD(M matrix.Square) matrix.Square {
	var base = M
	if real(M.Det()) < 0 {
		base = M.Scale(1i)
	}
	return cayley.Mul(base).Mul(cayleyInv)
}

// pdToUHP is the inverse conjugation. For orientation-reversing disk
// matrices the conjugate comes out purely imaginary; rotating by -i makes
// it the real UHP representative.
func pdToUHP(M matrix.Square) matrix.Square {
	var y = cayleyInv.Mul(M).Mul(cayley)
	if !y.IsReal(matrix.Epsilon) {
		y = y.Scale(-1i)
	}
	return y.RealPart()
}

// sl2rToSO21 is the double cover Phi: SL(2,R) -> SO(2,1). The input is
// normalized by sqrt(|det|) first; an orientation-reversing input A maps
// via Phi0(A*R)*S with R = diag(-1,1), S = diag(-1,1,1). Phi is even
// (Phi(-A) = Phi(A)), so the projective sign ambiguity of the source
// washes out.
func sl2rToSO21(M matrix.Square) matrix.Square {
	var (
		det  = real(M.Det())
		norm = math.Sqrt(math.Abs(det))
		a2   = M.RealPart().Scale(complex(1/norm, 0))
	)
	if det < 0 {
		return phi0(a2.Mul(compR)).Mul(compS)
	}
	return phi0(a2)
}

// phi0 is the orientation-preserving double cover on a normalized
// (determinant +1) real matrix [[a,b],[c,d]].
func phi0(M matrix.Square) matrix.Square {
	var (
		a = real(M.At(0, 0))
		b = real(M.At(0, 1))
		c = real(M.At(1, 0))
		d = real(M.At(1, 1))
	)
	return matrix.NewReal3(
		a*d+b*c, a*c-b*d, a*c+b*d,
		a*b-c*d, (a*a-b*b-c*c+d*d)/2, (a*a+b*b-c*c-d*d)/2,
		a*b+c*d, (a*a-b*b+c*c-d*d)/2, (a*a+b*b+c*c+d*d)/2,
	)
}

// so21ToSL2R is the section Psi of the double cover: recover a 2x2
// representative from a Lorentz matrix. Determinant -1 inputs factor
// through Psi0(M*S)*R, mirroring sl2rToSO21.
func so21ToSL2R(M matrix.Square) matrix.Square {
	var (
		m    = sheetCanonical(M.RealPart())
		flip = false
	)
	if real(m.Det()) < 0 {
		m = m.Mul(compS)
		flip = true
	}
	var out = psi0(m)
	if flip {
		out = out.Mul(compR)
	}
	return out
}

// psi0 inverts phi0 on a determinant +1 Lorentz matrix. The four squared
// entries come from sums of the lower-right block; the largest is used as
// the pivot and the remaining entries are recovered from the off-diagonal
// products, which fixes every relative sign. The global sign (the two
// sheets of the cover) is canonicalized so the first non-negligible entry
// of (a, b, c, d) is positive.
func psi0(M matrix.Square) matrix.Square {
	var (
		m1, m2, m3 = real(M.At(0, 0)), real(M.At(0, 1)), real(M.At(0, 2))
		m4         = real(M.At(1, 0))
		m5, m6     = real(M.At(1, 1)), real(M.At(1, 2))
		m7         = real(M.At(2, 0))
		m8, m9     = real(M.At(2, 1)), real(M.At(2, 2))

		aa = clampSquare((m5 + m6 + m8 + m9) / 2)
		bb = clampSquare((-m5 + m6 - m8 + m9) / 2)
		cc = clampSquare((-m5 - m6 + m8 + m9) / 2)
		dd = clampSquare((m5 - m6 - m8 + m9) / 2)

		a, b, c, d float64
	)
	// Stage 1 - pivot on the largest square; the pivot is safely away from
	// zero, so dividing the products below is stable.
	switch {
	case aa >= bb && aa >= cc && aa >= dd:
		a = math.Sqrt(aa)
		b = (m4 + m7) / (2 * a)
		c = (m2 + m3) / (2 * a)
		d = (m1 + 1) / (2 * a)
	case bb >= cc && bb >= dd:
		b = math.Sqrt(bb)
		a = (m4 + m7) / (2 * b)
		c = (m1 - 1) / (2 * b)
		d = (m3 - m2) / (2 * b)
	case cc >= dd:
		c = math.Sqrt(cc)
		a = (m2 + m3) / (2 * c)
		b = (m1 - 1) / (2 * c)
		d = (m7 - m4) / (2 * c)
	default:
		d = math.Sqrt(dd)
		a = (m1 + 1) / (2 * d)
		b = (m3 - m2) / (2 * d)
		c = (m7 - m4) / (2 * d)
	}

	// Stage 2 - canonical sheet of the cover.
	var lead = a
	if math.Abs(lead) < matrix.Epsilon {
		lead = b
	}
	if math.Abs(lead) < matrix.Epsilon {
		lead = c
	}
	if math.Abs(lead) < matrix.Epsilon {
		lead = d
	}
	if lead < 0 {
		a, b, c, d = -a, -b, -c, -d
	}
	return matrix.NewReal2(a, b, c, d)
}

// clampSquare zeroes the tiny negatives float noise produces in the
// squared-entry sums.
func clampSquare(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
