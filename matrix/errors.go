// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors (out-of-range
// indexing, order mixing); see doc.go.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadOrder is returned when a requested order is not 2 or 3. The
	// hyperbolic models use no other orders; anything else is rejected
	// before allocation.
	ErrBadOrder = errors.New("matrix: order must be 2 or 3")

	// ErrBadShape is returned when the entry count does not match the
	// requested order (order*order entries, row-major).
	ErrBadShape = errors.New("matrix: entry count does not match order")

	// ErrSingular signals that an inverse (or negative power) was requested
	// for a matrix whose determinant vanishes within Epsilon.
	ErrSingular = errors.New("matrix: matrix is singular within eps")

	// ErrNoEigen is returned when both the closed-form eigen decomposition
	// and the numerically robust fallback fail to produce usable
	// eigenvectors.
	ErrNoEigen = errors.New("matrix: eigen decomposition failed")
)
