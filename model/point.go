// Package model: Point values. A point is interior or boundary (ideal) and
// always remembers the model its coordinates live in; conversions make the
// model change explicit, never implicit.
package model

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyplane/matrix"
)

// Point is an immutable interior or ideal point of the hyperbolic plane in
// one of the four models. The zero value is the UHP point 0 (a boundary
// point); construct via the NewPoint* functions or Infinity.
type Point struct {
	model    Model
	v        [3]float64 // UHP/PD: (re, im, -); KM: (x, y, -); HM: (x0, x1, x2)
	infinite bool       // UHP only: the boundary point at infinity
}

// NewPointUHP builds an upper half-plane point from a complex coordinate.
// The imaginary part must be non-negative (within matrix.Epsilon); real
// values are boundary points. Returns ErrInvalidPoint otherwise.
func NewPointUHP(z complex128) (Point, error) {
	if imag(z) < -matrix.Epsilon {
		return Point{}, fmt.Errorf("NewPointUHP(%v): negative imaginary part: %w", z, ErrInvalidPoint)
	}
	return pointUHP(z), nil
}

// Infinity returns the distinguished UHP boundary point at infinity.
func Infinity() Point { return Point{model: UHP, infinite: true} }

// NewPointPD builds a Poincare disk point; the coordinate must satisfy
// |w| <= 1 within matrix.Epsilon. Returns ErrInvalidPoint otherwise.
func NewPointPD(w complex128) (Point, error) {
	if cmplx.Abs(w) > 1+matrix.Epsilon {
		return Point{}, fmt.Errorf("NewPointPD(%v): outside the unit disk: %w", w, ErrInvalidPoint)
	}
	return pointPD(w), nil
}

// NewPointKM builds a Klein disk point; (x, y) must satisfy x^2+y^2 <= 1
// within matrix.Epsilon. Returns ErrInvalidPoint otherwise.
func NewPointKM(x, y float64) (Point, error) {
	if x*x+y*y > 1+matrix.Epsilon {
		return Point{}, fmt.Errorf("NewPointKM(%g, %g): outside the unit disk: %w", x, y, ErrInvalidPoint)
	}
	return pointKM(x, y), nil
}

// NewPointHM builds a hyperboloid model point. Interior points satisfy
// x0^2+x1^2-x2^2 = -1 with x2 > 0 (upper sheet); ideal points are light
// cone vectors (x0^2+x1^2-x2^2 = 0, x2 > 0), conventionally normalized to
// x2 = 1. The quadratic-form tolerance scales with the squared vector norm.
// Returns ErrInvalidPoint otherwise.
func NewPointHM(x0, x1, x2 float64) (Point, error) {
	var (
		q   = x0*x0 + x1*x1 - x2*x2
		tol = matrix.Epsilon * normScale(x0, x1, x2)
	)
	if x2 <= 0 {
		return Point{}, fmt.Errorf("NewPointHM(%g, %g, %g): below the upper sheet: %w", x0, x1, x2, ErrInvalidPoint)
	}
	if math.Abs(q+1) > tol && math.Abs(q) > tol {
		return Point{}, fmt.Errorf("NewPointHM(%g, %g, %g): neither hyperboloid nor light cone: %w", x0, x1, x2, ErrInvalidPoint)
	}
	return pointHM(x0, x1, x2), nil
}

// Unchecked makers for internal use: conversion and action formulas land on
// the model by construction, so revalidating would only reject float noise.

func pointUHP(z complex128) Point {
	return Point{model: UHP, v: [3]float64{real(z), imag(z), 0}}
}

func pointPD(w complex128) Point {
	return Point{model: PD, v: [3]float64{real(w), imag(w), 0}}
}

func pointKM(x, y float64) Point {
	return Point{model: KM, v: [3]float64{x, y, 0}}
}

func pointHM(x0, x1, x2 float64) Point {
	return Point{model: HM, v: [3]float64{x0, x1, x2}}
}

// Model reports the model the point's coordinates live in.
func (p Point) Model() Model { return p.model }

// IsInfinity reports whether p is the UHP point at infinity.
func (p Point) IsInfinity() bool { return p.infinite }

// Complex returns the planar coordinate as a complex number: the natural
// coordinate for UHP and PD, (x + iy) for KM, (x0 + i*x1) for HM. Zero for
// the point at infinity.
func (p Point) Complex() complex128 {
	if p.infinite {
		return 0
	}
	return complex(p.v[0], p.v[1])
}

// XY returns the first two coordinates (the full KM coordinate pair).
func (p Point) XY() (float64, float64) { return p.v[0], p.v[1] }

// Vec returns the 3-vector of an HM point; the third component is zero for
// planar models.
func (p Point) Vec() [3]float64 { return p.v }

// IsBoundary reports whether p is an ideal point of its model: real axis or
// infinity (UHP), unit circle (PD, KM), light cone (HM).
func (p Point) IsBoundary() bool {
	switch p.model {
	case UHP:
		return p.infinite || math.Abs(p.v[1]) < matrix.Epsilon
	case PD, KM:
		return math.Abs(p.v[0]*p.v[0]+p.v[1]*p.v[1]-1) < matrix.Epsilon
	case HM:
		var q = p.v[0]*p.v[0] + p.v[1]*p.v[1] - p.v[2]*p.v[2]
		return math.Abs(q) < matrix.Epsilon*normScale(p.v[0], p.v[1], p.v[2])
	default:
		return false
	}
}

// Equal reports whether both points live in the same model and coincide
// within matrix.Epsilon per coordinate.
func (p Point) Equal(o Point) bool {
	if p.model != o.model || p.infinite != o.infinite {
		return false
	}
	if p.infinite {
		return true
	}
	return math.Abs(p.v[0]-o.v[0]) < matrix.Epsilon &&
		math.Abs(p.v[1]-o.v[1]) < matrix.Epsilon &&
		math.Abs(p.v[2]-o.v[2]) < matrix.Epsilon
}

// String renders the coordinate in the model's natural form.
func (p Point) String() string {
	switch {
	case p.infinite:
		return "infinity"
	case p.model == KM:
		return fmt.Sprintf("(%g, %g)", posZero(p.v[0]), posZero(p.v[1]))
	case p.model == HM:
		return fmt.Sprintf("(%g, %g, %g)", posZero(p.v[0]), posZero(p.v[1]), posZero(p.v[2]))
	default:
		return matrix.FormatEntry(p.Complex())
	}
}

// posZero drops the sign of a negative zero before display.
func posZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// normScale keeps quadratic-form tolerances relative for far-out vectors.
func normScale(x0, x1, x2 float64) float64 {
	var n2 = x0*x0 + x1*x1 + x2*x2
	if n2 < 1 {
		return 1
	}
	return n2
}
