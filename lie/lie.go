// SPDX-License-Identifier: MIT

// Package lie: the required core contract and the optional capability
// interfaces.
package lie

import (
	"fmt"
)

// Element is the arithmetic contract of one algebra element. Operands of
// Add and Equal must come from the same algebra; cross-algebra mixing is
// handled one level up by coercion, never here.
type Element interface {
	// Add returns the sum of both elements.
	Add(o Element) Element
	// Neg returns the additive inverse.
	Neg() Element
	// IsZero reports whether the element is the algebra's zero.
	IsZero() bool
	// Equal reports whether both elements coincide.
	Equal(o Element) bool
}

// Algebra is the required core of a Lie algebra: everything else in this
// package is either derived from these four operations or an optional
// capability.
type Algebra interface {
	// Coerce converts v into an element of the algebra. Implementations
	// accept their own element type and a bare zero (untyped 0 or nil);
	// module-carrying algebras also accept coordinate vectors. Anything
	// else reports ErrCoercion.
	Coerce(v any) (Element, error)
	// BracketElements is the bilinear antisymmetric bracket on already
	// coerced elements.
	BracketElements(x, y Element) Element
	// Zero returns the zero element.
	Zero() Element
	// Generators enumerates a generating set, or reports
	// ErrInfiniteGenerators when the set is not finitely enumerable.
	Generators() ([]Element, error)
}

// Bracket returns [x, y] after coercing both operands into alg's element
// type. Bracketing anything with zero yields zero.
func Bracket(alg Algebra, x, y any) (Element, error) {
	xe, err := alg.Coerce(x)
	if err != nil {
		return nil, fmt.Errorf("Bracket: left operand: %w", err)
	}
	ye, err := alg.Coerce(y)
	if err != nil {
		return nil, fmt.Errorf("Bracket: right operand: %w", err)
	}
	return alg.BracketElements(xe, ye), nil
}

// IsAbelian reports whether every pair of generators brackets to zero.
// An algebra declaring the Abelian axiom answers without enumerating
// generators; otherwise a non-enumerable generating set reports
// ErrInfiniteGenerators.
func IsAbelian(alg Algebra) (bool, error) {
	if ax, ok := alg.(AxiomCarrier); ok && ax.Axioms().Has(Abelian) {
		return true, nil
	}
	gens, err := alg.Generators()
	if err != nil {
		return false, fmt.Errorf("IsAbelian: %w", err)
	}
	for _, x := range gens {
		for _, y := range gens {
			if !alg.BracketElements(x, y).IsZero() {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsCommutative is equivalent to IsAbelian.
func IsCommutative(alg Algebra) (bool, error) { return IsAbelian(alg) }

// Subalgebra would return the subalgebra generated by gens.
func Subalgebra(alg Algebra, gens []Element) (Algebra, error) {
	return nil, fmt.Errorf("Subalgebra: %w", ErrNotImplemented)
}

// ModuleCarrier is the free-module view of an algebra: a fixed finite
// dimension and the linear isomorphism from coordinate vectors to
// elements.
type ModuleCarrier interface {
	// Dimension is the rank of the underlying free module.
	Dimension() int
	// FromVector builds the element with the given basis coordinates;
	// a vector of the wrong length reports ErrCoercion.
	FromVector(v []float64) (Element, error)
}

// Vectorizable is the element-level inverse of ModuleCarrier.FromVector.
type Vectorizable interface {
	// ToVector returns the element's coordinates in the distinguished
	// basis.
	ToVector() []float64
}

// KillingFormer evaluates the Killing form of the algebra.
type KillingFormer interface {
	KillingForm(x, y Element) (float64, error)
}

// Solvability answers the derived-series questions.
type Solvability interface {
	IsSolvable() bool
	IsNilpotent() bool
}

// EnvelopingConstructor builds the universal enveloping algebra. Lift and
// UniversalEnvelopingAlgebra require this capability.
type EnvelopingConstructor interface {
	ConstructEnvelopingAlgebra() (EnvelopingAlgebra, error)
}

// AxiomCarrier declares structural axioms the algebra is known to
// satisfy, letting derived checks short-circuit.
type AxiomCarrier interface {
	Axioms() AxiomSet
}

// Capability queries. Plain type assertions wrapped for readability;
// callers that need the upgraded interface assert directly.

func HasModule(alg Algebra) bool {
	_, ok := alg.(ModuleCarrier)
	return ok
}

func HasKillingForm(alg Algebra) bool {
	_, ok := alg.(KillingFormer)
	return ok
}

func HasSolvability(alg Algebra) bool {
	_, ok := alg.(Solvability)
	return ok
}

func HasEnveloping(alg Algebra) bool {
	_, ok := alg.(EnvelopingConstructor)
	return ok
}

func HasAxioms(alg Algebra) bool {
	_, ok := alg.(AxiomCarrier)
	return ok
}

// HasVector reports whether the element can produce basis coordinates.
func HasVector(x Element) bool {
	_, ok := x.(Vectorizable)
	return ok
}
