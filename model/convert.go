// Package model: closed-form point conversions between the four models.
// Every pairwise conversion is routed through the UHP coordinate except
// KM<->HM, which is plain (de)homogenization of the shared 3-vector.
package model

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyplane/matrix"
)

// ConvertPoint maps p into target, preserving the underlying abstract
// point. Returns ErrUnknownModel for an unregistered target; conversion
// itself is total on valid points.
//
// Complexity: O(1), a handful of closed-form arithmetic operations.
func ConvertPoint(p Point, target Model) (Point, error) {
	if !target.Valid() {
		return Point{}, ErrUnknownModel
	}
	if p.Model() == target {
		return p, nil
	}

	// KM<->HM share the Lorentz 3-vector; avoid the UHP detour.
	if p.Model() == HM && target == KM {
		var v = p.Vec()
		return pointKM(v[0]/v[2], v[1]/v[2]), nil
	}
	if p.Model() == KM && target == HM {
		var x, y = p.XY()
		if p.IsBoundary() {
			return pointHM(x, y, 1), nil
		}
		var s = math.Sqrt(math.Max(0, 1-x*x-y*y))
		return pointHM(x/s, y/s, 1/s), nil
	}

	var z, inf = toUHPCoord(p)
	return fromUHPCoord(z, inf, target), nil
}

// toUHPCoord flattens any point into the UHP coordinate: a finite complex
// number or the infinity sentinel.
func toUHPCoord(p Point) (complex128, bool) {
	switch p.Model() {
	case UHP:
		return p.Complex(), p.IsInfinity()
	case PD:
		var (
			w   = p.Complex()
			den = 1 + 1i*w
		)
		if cmplx.Abs(den) < matrix.Epsilon {
			return 0, true // w = i is the preimage of infinity
		}
		return (w + 1i) / den, false
	case KM:
		var x, y = p.XY()
		if 1-y < matrix.Epsilon {
			return 0, true // (0, 1) is the preimage of infinity
		}
		var s = math.Sqrt(math.Max(0, 1-x*x-y*y))
		return complex(x/(1-y), s/(1-y)), false
	case HM:
		var (
			v   = p.Vec()
			den = v[2] - v[1]
		)
		if math.Abs(den) < matrix.Epsilon {
			return 0, true // light cone direction (0, 1, 1)
		}
		if p.IsBoundary() {
			return complex(v[0]/den, 0), false
		}
		return complex(v[0]/den, 1/den), false
	default:
		return 0, false
	}
}

// fromUHPCoord builds the target-model point for a UHP coordinate.
func fromUHPCoord(z complex128, inf bool, target Model) Point {
	switch target {
	case UHP:
		if inf {
			return Infinity()
		}
		return pointUHP(z)
	case PD:
		if inf {
			return pointPD(1i)
		}
		var den = 1 - 1i*z
		if cmplx.Abs(den) < matrix.Epsilon {
			return pointPD(1i)
		}
		return pointPD((z - 1i) / den)
	case KM:
		if inf {
			return pointKM(0, 1)
		}
		var (
			r2 = real(z)*real(z) + imag(z)*imag(z)
			d  = r2 + 1
		)
		return pointKM(2*real(z)/d, (r2-1)/d)
	case HM:
		if inf {
			return pointHM(0, 1, 1)
		}
		var x, y = real(z), imag(z)
		if math.Abs(y) < matrix.Epsilon {
			// Boundary value: light cone vector normalized to x2 = 1.
			var d = x*x + 1
			return pointHM(2*x/d, (x*x-1)/d, 1)
		}
		var r2 = x*x + y*y
		return pointHM(x/y, (r2-1)/(2*y), (r2+1)/(2*y))
	default:
		return Point{}
	}
}
