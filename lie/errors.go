// SPDX-License-Identifier: MIT

// Package lie: sentinel error set.
package lie

import "errors"

// NOTE ON NAMING & PREFIXING
// Sentinels follow the "lie: ..." prefix convention so wrapped chains read
// naturally in logs and errors.Is stays the single dispatch mechanism.

var (
	// ErrInfiniteGenerators is returned by IsAbelian and IsCommutative
	// when the algebra's generating set is not finitely enumerable, so
	// the pairwise bracket check cannot terminate.
	ErrInfiniteGenerators = errors.New("lie: infinite number of generators")

	// ErrCoercion is returned when an operand cannot be coerced into the
	// algebra's element type.
	ErrCoercion = errors.New("lie: operand does not coerce into the algebra")

	// ErrNoEnveloping is returned by Lift and UniversalEnvelopingAlgebra
	// when the algebra does not carry the enveloping-construction
	// capability.
	ErrNoEnveloping = errors.New("lie: algebra cannot construct an enveloping algebra")

	// ErrNotImplemented marks contract surface that is declared but not
	// yet available, such as Subalgebra.
	ErrNotImplemented = errors.New("lie: not implemented")

	// ErrAxiomViolated is reported by the Validate helpers when a sampled
	// element breaks antisymmetry, the Jacobi identity, or
	// distributivity.
	ErrAxiomViolated = errors.New("lie: algebra axiom violated")
)
