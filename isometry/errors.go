// SPDX-License-Identifier: MIT

// Package isometry: sentinel error set.
package isometry

import "errors"

// NOTE ON NAMING & PREFIXING
// Sentinels follow the "isometry: ..." prefix convention so wrapped chains
// read naturally in logs and errors.Is stays the single dispatch mechanism.

var (
	// ErrClassification reports a matrix whose trace/determinant
	// combination escaped every classification branch. It signals a
	// contract violation in the caller or the engine, never a user
	// input error.
	ErrClassification = errors.New("isometry: matrix escaped every classification branch")

	// ErrNotHyperbolic is returned when translation length, attracting or
	// repelling fixed points, or the axis are requested on an isometry
	// that is not hyperbolic or orientation-reversing hyperbolic.
	ErrNotHyperbolic = errors.New("isometry: the isometry is not hyperbolic")

	// ErrUndefinedFixedPoint is returned for fixed-point queries on the
	// identity, which fixes the entire hyperbolic plane.
	ErrUndefinedFixedPoint = errors.New("isometry: fixed point set undefined for the identity")

	// ErrNonIdealPoint is returned by FromFixedPoints when an input is
	// not a boundary point: fixed points of hyperbolic elements must be
	// ideal.
	ErrNonIdealPoint = errors.New("isometry: fixed points of hyperbolic elements must be ideal")

	// ErrCoincidentPoints is returned by FromFixedPoints when both inputs
	// name the same boundary point.
	ErrCoincidentPoints = errors.New("isometry: fixed points must be distinct")
)
