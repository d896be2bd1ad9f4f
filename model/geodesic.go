// Package model: Geodesic values, the complete geodesic through two
// distinct points.
package model

import (
	"fmt"
)

// Geodesic is the complete geodesic determined by two distinct points of a
// single model. Endpoints may be interior or ideal; a geodesic between two
// ideal points is the full axis between them.
type Geodesic struct {
	model      Model
	start, end Point
}

// NewGeodesic builds the geodesic through start and end. Both points must
// already live in model m (ErrModelMismatch) and must be distinct
// (ErrInvalidPoint).
func NewGeodesic(m Model, start, end Point) (Geodesic, error) {
	if !m.Valid() {
		return Geodesic{}, ErrUnknownModel
	}
	if start.Model() != m || end.Model() != m {
		return Geodesic{}, fmt.Errorf("NewGeodesic in %v with endpoints in %v and %v: %w",
			m, start.Model(), end.Model(), ErrModelMismatch)
	}
	if start.Equal(end) {
		return Geodesic{}, fmt.Errorf("NewGeodesic: coincident endpoints %v: %w", start, ErrInvalidPoint)
	}
	return Geodesic{model: m, start: start, end: end}, nil
}

// Model reports the model the geodesic lives in.
func (g Geodesic) Model() Model { return g.model }

// Start returns the first determining point.
func (g Geodesic) Start() Point { return g.start }

// End returns the second determining point.
func (g Geodesic) End() Point { return g.end }

// ToModel converts the geodesic by converting both endpoints.
func (g Geodesic) ToModel(target Model) (Geodesic, error) {
	var (
		s, e Point
		err  error
	)
	if s, err = ConvertPoint(g.start, target); err != nil {
		return Geodesic{}, err
	}
	if e, err = ConvertPoint(g.end, target); err != nil {
		return Geodesic{}, err
	}
	return NewGeodesic(target, s, e)
}

// Equal reports whether both geodesics live in the same model with equal
// endpoints in the same order.
func (g Geodesic) Equal(o Geodesic) bool {
	return g.model == o.model && g.start.Equal(o.start) && g.end.Equal(o.end)
}

// String renders the geodesic with both endpoints.
func (g Geodesic) String() string {
	return fmt.Sprintf("geodesic in %v from %v to %v", g.model, g.start, g.end)
}
