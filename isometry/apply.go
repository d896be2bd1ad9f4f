// SPDX-License-Identifier: MIT

// Package isometry: the action on points and geodesics of the isometry's
// own model.
package isometry

import (
	"fmt"

	"github.com/katalvlaran/hyplane/model"
)

// Apply moves a point of the isometry's model. Points of another model
// are rejected with model.ErrModelMismatch; convert explicitly first.
func (iso *Isometry) Apply(p model.Point) (model.Point, error) {
	return model.Apply(iso.model, iso.mat, p)
}

// ApplyGeodesic moves a geodesic by moving both determining points.
func (iso *Isometry) ApplyGeodesic(g model.Geodesic) (model.Geodesic, error) {
	if g.Model() != iso.model {
		return model.Geodesic{}, fmt.Errorf("ApplyGeodesic in %v to a geodesic of %v: %w",
			iso.model, g.Model(), model.ErrModelMismatch)
	}
	s, err := iso.Apply(g.Start())
	if err != nil {
		return model.Geodesic{}, err
	}
	e, err := iso.Apply(g.End())
	if err != nil {
		return model.Geodesic{}, err
	}
	return model.NewGeodesic(iso.model, s, e)
}
