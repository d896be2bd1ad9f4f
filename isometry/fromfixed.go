// SPDX-License-Identifier: MIT

// Package isometry: construction of a hyperbolic isometry from a
// prescribed pair of ideal fixed points.
package isometry

import (
	"fmt"

	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

// FromFixedPoints returns the isometry of model m whose repelling fixed
// point is repel and attracting fixed point is attract. The inputs may
// live in any model; each is checked for ideality on its native
// coordinates (ErrNonIdealPoint otherwise) before being converted to the
// computation model. Coincident inputs report ErrCoincidentPoints.
//
// The construction pins the Moebius map with a third point pair chosen so
// the boundary flow genuinely runs from repel to attract; the result is
// always orientation-preserving hyperbolic.
func FromFixedPoints(m model.Model, repel, attract model.Point) (*Isometry, error) {
	if !m.Valid() {
		return nil, model.ErrUnknownModel
	}
	if !repel.IsBoundary() {
		return nil, fmt.Errorf("FromFixedPoints: repelling point %v: %w", repel, ErrNonIdealPoint)
	}
	if !attract.IsBoundary() {
		return nil, fmt.Errorf("FromFixedPoints: attracting point %v: %w", attract, ErrNonIdealPoint)
	}

	rp, err := model.ConvertPoint(repel, model.UHP)
	if err != nil {
		return nil, err
	}
	ap, err := model.ConvertPoint(attract, model.UHP)
	if err != nil {
		return nil, err
	}
	if rp.Equal(ap) {
		return nil, fmt.Errorf("FromFixedPoints: %v and %v name the same boundary point: %w", repel, attract, ErrCoincidentPoints)
	}

	M, err := hyperbolicSending(boundaryOf(rp), boundaryOf(ap))
	if err != nil {
		return nil, err
	}
	out, err := model.ConvertMatrix(model.UHP, m, M)
	if err != nil {
		return nil, err
	}
	return &Isometry{model: m, mat: out}, nil
}

// ideal is a boundary coordinate of the upper half-plane: a real value or
// the point at infinity.
type ideal struct {
	x   float64
	inf bool
}

func boundaryOf(p model.Point) ideal {
	return ideal{x: real(p.Complex()), inf: p.IsInfinity()}
}

func finite(x float64) ideal { return ideal{x: x} }

var idealInf = ideal{inf: true}

// hyperbolicSending builds the matrix of the Moebius transformation
// fixing repel and attract with the prescribed dynamics. The third point
// pair encodes the flow direction:
//
//	repel = inf:  (inf, a, a+2) -> (inf, a, a+1)   contraction toward a
//	attract = inf: (r, inf, r+1) -> (r, inf, r+2)  expansion away from r
//	both finite:  (r, a, inf) -> (r, a, w) with w one step beyond a on
//	              the side away from r
func hyperbolicSending(repel, attract ideal) (matrix.Square, error) {
	var src, dst [3]ideal
	switch {
	case repel.inf:
		src = [3]ideal{idealInf, attract, finite(attract.x + 2)}
		dst = [3]ideal{idealInf, attract, finite(attract.x + 1)}
	case attract.inf:
		src = [3]ideal{repel, idealInf, finite(repel.x + 1)}
		dst = [3]ideal{repel, idealInf, finite(repel.x + 2)}
	default:
		var w = attract.x - 1
		if attract.x > repel.x {
			w = attract.x + 1
		}
		src = [3]ideal{repel, attract, idealInf}
		dst = [3]ideal{repel, attract, finite(w)}
	}
	return moebiusSending(src, dst)
}

// moebiusSending returns the matrix carrying the source triple to the
// destination triple: crossRatio(dst)^-1 * crossRatio(src).
func moebiusSending(src, dst [3]ideal) (matrix.Square, error) {
	inv, err := crossRatio(dst).Inverse()
	if err != nil {
		return matrix.Square{}, err
	}
	return inv.Mul(crossRatio(src)), nil
}

// crossRatio is the matrix of the Moebius transformation sending the
// triple (p0, p1, p2) to (0, 1, inf), with one branch per infinite slot.
func crossRatio(p [3]ideal) matrix.Square {
	var p0, p1, p2 = p[0].x, p[1].x, p[2].x
	switch {
	case p[0].inf:
		return matrix.NewReal2(0, -(p1 - p2), -1, p2)
	case p[1].inf:
		return matrix.NewReal2(1, -p0, 1, -p2)
	case p[2].inf:
		return matrix.NewReal2(1, -p0, 0, p1-p0)
	default:
		return matrix.NewReal2(p1-p2, -p0*(p1-p2), p1-p0, -p2*(p1-p0))
	}
}
