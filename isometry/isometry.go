// SPDX-License-Identifier: MIT

// Package isometry: the Isometry value, its constructors and group
// operations, and the per-model dispatch table.
package isometry

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

// Isometry is an immutable isometry of the hyperbolic plane: one matrix
// and the model its coordinates live in. The upper half-plane
// representation used by the classification formulas is converted once on
// first use and cached; use via pointer so the cache is shared.
type Isometry struct {
	model model.Model
	mat   matrix.Square

	once sync.Once
	uhp  matrix.Square
}

// New validates mat against the model's membership test and wraps it.
// Returns model.ErrInvalidIsometry (wrapped with the failing condition)
// on rejection.
func New(m model.Model, mat matrix.Square) (*Isometry, error) {
	if err := model.ValidateIsometry(m, mat); err != nil {
		return nil, err
	}
	return &Isometry{model: m, mat: mat}, nil
}

// IdentityIn returns the identity isometry of the model.
func IdentityIn(m model.Model) (*Isometry, error) {
	if !m.Valid() {
		return nil, model.ErrUnknownModel
	}
	if m.Dim() == 2 {
		return &Isometry{model: m, mat: matrix.Identity2()}, nil
	}
	return &Isometry{model: m, mat: matrix.Identity3()}, nil
}

// Model reports the model the isometry's matrix lives in.
func (iso *Isometry) Model() model.Model { return iso.model }

// Matrix returns the wrapped matrix representative.
func (iso *Isometry) Matrix() matrix.Square { return iso.mat }

// uhpMatrix returns the 2x2 upper half-plane representation, converting
// on first use. Conversion between valid registered models cannot fail,
// so the cached value is total.
func (iso *Isometry) uhpMatrix() matrix.Square {
	iso.once.Do(func() {
		iso.uhp, _ = model.ConvertMatrix(iso.model, model.UHP, iso.mat)
	})
	return iso.uhp
}

// ToModel re-expresses the isometry in the target model via the
// closed-form matrix conversion. The receiver itself is returned when the
// target is its own model.
func (iso *Isometry) ToModel(target model.Model) (*Isometry, error) {
	if target == iso.model {
		return iso, nil
	}
	m, err := model.ConvertMatrix(iso.model, target, iso.mat)
	if err != nil {
		return nil, err
	}
	return &Isometry{model: target, mat: m}, nil
}

// Equal reports whether both isometries live in the same model and their
// matrices coincide within matrix.Epsilon, up to a global sign when the
// model is projective.
func (iso *Isometry) Equal(o *Isometry) bool {
	if iso.model != o.model {
		return false
	}
	if iso.model.Projective() {
		return iso.mat.EqualModSign(o.mat, matrix.Epsilon)
	}
	return iso.mat.Equal(o.mat, matrix.Epsilon)
}

// Mul composes two isometries of the same model; the product acts as iso
// after o (matrix product iso*o). Mixed models are rejected with
// model.ErrModelMismatch; convert explicitly first.
func (iso *Isometry) Mul(o *Isometry) (*Isometry, error) {
	if iso.model != o.model {
		return nil, fmt.Errorf("Mul: %v with %v: %w", iso.model, o.model, model.ErrModelMismatch)
	}
	return &Isometry{model: iso.model, mat: iso.mat.Mul(o.mat)}, nil
}

// Inverse returns the inverse isometry. Group membership guarantees the
// matrix inverse exists and stays in the group.
func (iso *Isometry) Inverse() (*Isometry, error) {
	inv, err := iso.mat.Inverse()
	if err != nil {
		return nil, err
	}
	return &Isometry{model: iso.model, mat: inv}, nil
}

// Pow returns the k-th power; negative k goes through the inverse, k = 0
// is the identity of the model.
func (iso *Isometry) Pow(k int) (*Isometry, error) {
	m, err := iso.mat.Pow(k)
	if err != nil {
		return nil, err
	}
	return &Isometry{model: iso.model, mat: m}, nil
}

// String renders the model tag and the matrix rows.
func (iso *Isometry) String() string {
	return fmt.Sprintf("Isometry in %v\n%v", iso.model, iso.mat)
}

// methodSet is one row of the per-model dispatch table: how an isometry
// of that model reaches the 2x2 computation matrix the UHP formulas run
// on, and how result points travel back into the model. Adding a model
// means adding a row here (plus its conversions in package model), not a
// new isometry variant.
type methodSet struct {
	computeMatrix func(iso *Isometry) matrix.Square
	homePoint     func(p model.Point) (model.Point, error)
}

var methods = [...]methodSet{
	model.UHP: {
		computeMatrix: (*Isometry).Matrix,
		homePoint:     func(p model.Point) (model.Point, error) { return p, nil },
	},
	model.PD: {
		computeMatrix: (*Isometry).uhpMatrix,
		homePoint:     homeTo(model.PD),
	},
	model.KM: {
		computeMatrix: (*Isometry).uhpMatrix,
		homePoint:     homeTo(model.KM),
	},
	model.HM: {
		computeMatrix: (*Isometry).uhpMatrix,
		homePoint:     homeTo(model.HM),
	},
}

func homeTo(m model.Model) func(model.Point) (model.Point, error) {
	return func(p model.Point) (model.Point, error) {
		return model.ConvertPoint(p, m)
	}
}
