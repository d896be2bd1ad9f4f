// Package model: the Model enum, its descriptor registry and the sentinel
// error set. Points live in point.go, geodesics in geodesic.go, conversions
// in convert.go and matrix_convert.go, validity in validate.go.
package model

import (
	"errors"
	"strings"
)

// Sentinel errors for model operations.
var (
	// ErrUnknownModel is returned when a Model value (or its string tag)
	// does not name one of UHP, PD, KM, HM.
	ErrUnknownModel = errors.New("model: unknown hyperbolic model")

	// ErrInvalidIsometry is returned when a matrix fails the model's
	// isometry membership test at construction time.
	ErrInvalidIsometry = errors.New("model: matrix is not an isometry of the model")

	// ErrInvalidPoint is returned when coordinates do not describe an
	// interior or boundary point of the model.
	ErrInvalidPoint = errors.New("model: coordinates outside the model")

	// ErrModelMismatch is returned when values from different models meet
	// an operation that requires a single model (composition, actions,
	// geodesic construction). Explicit conversion is always available.
	ErrModelMismatch = errors.New("model: operands belong to different models")
)

// Model selects one of the four coordinate models of the hyperbolic plane.
type Model int

const (
	// UHP is the upper half-plane model: 2x2 real matrices acting as
	// Moebius transformations, defined up to sign. The computation model
	// for classification.
	UHP Model = iota
	// PD is the Poincare disk model: 2x2 complex matrices of U(1,1) shape
	// (or i times that shape), defined up to sign.
	PD
	// KM is the Klein disk model: 3x3 real Lorentz-form-preserving
	// matrices acting projectively, defined up to sign.
	KM
	// HM is the hyperboloid model: 3x3 real Lorentz-form-preserving
	// matrices acting linearly on the upper sheet. Not projective.
	HM

	modelCount
)

// descriptor carries the immutable per-model attributes. The registry is
// populated once at compile time and never mutated (read-only singleton per
// model).
type descriptor struct {
	tag        string
	dim        int
	projective bool
}

var registry = [modelCount]descriptor{
	UHP: {tag: "UHP", dim: 2, projective: true},
	PD:  {tag: "PD", dim: 2, projective: true},
	KM:  {tag: "KM", dim: 3, projective: true},
	HM:  {tag: "HM", dim: 3, projective: false},
}

// Valid reports whether m names a registered model.
func (m Model) Valid() bool { return m >= 0 && m < modelCount }

// String returns the model's short tag ("UHP", "PD", "KM", "HM").
func (m Model) String() string {
	if !m.Valid() {
		return "model(invalid)"
	}
	return registry[m].tag
}

// Dim returns the matrix order of the model's isometry group (2 or 3).
func (m Model) Dim() int {
	if !m.Valid() {
		return 0
	}
	return registry[m].dim
}

// Projective reports whether matrices represent isometries only up to a
// global sign in this model.
func (m Model) Projective() bool {
	if !m.Valid() {
		return false
	}
	return registry[m].projective
}

// Models returns the four models in registry order.
func Models() []Model { return []Model{UHP, PD, KM, HM} }

// Parse resolves a short tag (case-insensitive) into a Model.
// Returns ErrUnknownModel for anything else.
func Parse(tag string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "UHP":
		return UHP, nil
	case "PD":
		return PD, nil
	case "KM":
		return KM, nil
	case "HM":
		return HM, nil
	default:
		return Model(-1), ErrUnknownModel
	}
}
