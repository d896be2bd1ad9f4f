// SPDX-License-Identifier: MIT

// Package isometry: fixed-point sets, attracting/repelling dynamics, and
// the axis and fixed geodesic built from them.
package isometry

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

// FixedPointSet returns the ordered fixed points of the isometry as
// points of its own model: one boundary point for a parabolic, one
// interior point for an elliptic, two boundary points for the hyperbolic
// kinds and reflections. The identity reports ErrUndefinedFixedPoint.
func (iso *Isometry) FixedPointSet() ([]model.Point, error) {
	pts, err := fixedPointsUHP(methods[iso.model].computeMatrix(iso))
	if err != nil {
		return nil, err
	}
	var out = make([]model.Point, len(pts))
	for i, p := range pts {
		if out[i], err = methods[iso.model].homePoint(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RepellingFixedPoint returns the boundary point the hyperbolic dynamics
// flow away from: the eigendirection of the smaller-modulus eigenvalue.
// ErrNotHyperbolic unless the class is hyperbolic or orientation-
// reversing hyperbolic.
func (iso *Isometry) RepellingFixedPoint() (model.Point, error) {
	return iso.directionFixedPoint(1, "RepellingFixedPoint")
}

// AttractingFixedPoint returns the boundary point the dynamics flow
// toward: the eigendirection of the larger-modulus eigenvalue.
func (iso *Isometry) AttractingFixedPoint() (model.Point, error) {
	return iso.directionFixedPoint(0, "AttractingFixedPoint")
}

// directionFixedPoint resolves the eigenvector at the given modulus rank
// (0 = larger = attracting, 1 = smaller = repelling) into a boundary
// point of the isometry's model.
func (iso *Isometry) directionFixedPoint(rank int, op string) (model.Point, error) {
	var A = methods[iso.model].computeMatrix(iso)
	cls, err := classifyMatrix(A)
	if err != nil {
		return model.Point{}, err
	}
	if !cls.IsHyperbolic() {
		return model.Point{}, fmt.Errorf("%s of a %v isometry: %w", op, cls, ErrNotHyperbolic)
	}
	_, vecs, err := matrix.Eigen2(A)
	if err != nil {
		return model.Point{}, err
	}
	p, err := boundaryValue(vecs[rank])
	if err != nil {
		return model.Point{}, err
	}
	return methods[iso.model].homePoint(p)
}

// Axis returns the geodesic the isometry translates along, through its
// two boundary fixed points in fixed-point-set order.
func (iso *Isometry) Axis() (model.Geodesic, error) {
	cls, err := iso.Classification()
	if err != nil {
		return model.Geodesic{}, err
	}
	if !cls.IsHyperbolic() {
		return model.Geodesic{}, fmt.Errorf("the isometry is not hyperbolic: axis is undefined: %w", ErrNotHyperbolic)
	}
	return iso.FixedGeodesic()
}

// FixedGeodesic returns the geodesic whose endpoints the isometry fixes.
// Defined for the classes with exactly two fixed points: the hyperbolic
// kinds, where it coincides with the axis, and reflections, where it is
// the pointwise-fixed mirror.
func (iso *Isometry) FixedGeodesic() (model.Geodesic, error) {
	pts, err := iso.FixedPointSet()
	if err != nil {
		return model.Geodesic{}, err
	}
	if len(pts) != 2 {
		return model.Geodesic{}, fmt.Errorf("FixedGeodesic: %d fixed points, a geodesic needs 2: %w", len(pts), ErrNotHyperbolic)
	}
	return model.NewGeodesic(iso.model, pts[0], pts[1])
}

// fixedPointsUHP computes the fixed points of a 2x2 computation matrix as
// UHP points.
func fixedPointsUHP(A matrix.Square) ([]model.Point, error) {
	cls, err := classifyMatrix(A)
	if err != nil {
		return nil, err
	}
	var (
		m, _, tau = normalized(A)
		a, b      = real(m.At(0, 0)), real(m.At(0, 1))
		c, d      = real(m.At(1, 0)), real(m.At(1, 1))
	)
	switch cls {
	case Identity:
		return nil, fmt.Errorf("the identity fixes the entire hyperbolic plane: %w", ErrUndefinedFixedPoint)

	case Parabolic:
		if math.Abs(c) < matrix.Epsilon {
			return []model.Point{model.Infinity()}, nil
		}
		p, err := model.NewPointUHP(complex((a-d)/(2*c), 0))
		if err != nil {
			return nil, err
		}
		return []model.Point{p}, nil

	case Elliptic:
		// c = 0 is impossible here: a real triangular matrix has real
		// eigenvalues, and |a + 1/a| >= 2 contradicts tau < 2.
		p, err := model.NewPointUHP(complex(
			(a-d)/(2*c),
			math.Sqrt(math.Max(0, 4-tau*tau))/(2*math.Abs(c)),
		))
		if err != nil {
			return nil, err
		}
		return []model.Point{p}, nil

	case Hyperbolic:
		if math.Abs(c) < matrix.Epsilon {
			p, err := model.NewPointUHP(complex(b/(d-a), 0))
			if err != nil {
				return nil, err
			}
			return []model.Point{p, model.Infinity()}, nil
		}
		var (
			disc  = math.Sqrt(tau*tau - 4)
			first = complex((a-d-disc)/(2*c), 0)
			last  = complex((a-d+disc)/(2*c), 0)
		)
		p1, err := model.NewPointUHP(first)
		if err != nil {
			return nil, err
		}
		p2, err := model.NewPointUHP(last)
		if err != nil {
			return nil, err
		}
		return []model.Point{p1, p2}, nil

	default: // Reflection, OrientationReversingHyperbolic
		return eigenFixedPoints(m)
	}
}

// eigenFixedPoints is the fallback for the orientation-reversing classes:
// each right eigenvector (p, q) contributes the boundary value p/q (or
// infinity when q is negligible); values with negative imaginary part lie
// outside the closed half-plane and are dropped.
func eigenFixedPoints(m matrix.Square) ([]model.Point, error) {
	_, vecs, err := matrix.Eigen2(m)
	if err != nil {
		return nil, err
	}
	var pts = make([]model.Point, 0, 2)
	for _, v := range vecs {
		p, err := boundaryValue(v)
		if errors.Is(err, model.ErrInvalidPoint) {
			continue
		}
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// boundaryValue dehomogenizes a projective eigenvector (p, q) into the
// UHP boundary point p/q, or infinity when q is negligible relative to
// the vector's scale.
func boundaryValue(v [2]complex128) (model.Point, error) {
	var scale = cmplx.Abs(v[0]) + cmplx.Abs(v[1])
	if scale < matrix.Epsilon || cmplx.Abs(v[1]) < matrix.Epsilon*scale {
		return model.Infinity(), nil
	}
	return model.NewPointUHP(v[0] / v[1])
}
