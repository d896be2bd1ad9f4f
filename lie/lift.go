// SPDX-License-Identifier: MIT

// Package lie: the canonical lift into the universal enveloping algebra.
package lie

import (
	"fmt"
	"sync"
)

// AssociativeElement is an element of an enveloping algebra: the same
// additive contract as Element plus the associative product.
type AssociativeElement interface {
	Mul(o AssociativeElement) AssociativeElement
	Add(o AssociativeElement) AssociativeElement
	Neg() AssociativeElement
	Equal(o AssociativeElement) bool
}

// EnvelopingAlgebra is the receiving end of the lift: it embeds Lie
// algebra elements as associative elements so that brackets become
// commutators.
type EnvelopingAlgebra interface {
	Embed(x Element) (AssociativeElement, error)
}

// Commutator returns a*b - b*a, the bracket's image under the lift.
func Commutator(a, b AssociativeElement) AssociativeElement {
	return a.Mul(b).Add(b.Mul(a).Neg())
}

// LiftMorphism is the structure-preserving map from a Lie algebra into
// its universal enveloping algebra: Apply([x, y]) equals the commutator
// of Apply(x) and Apply(y).
type LiftMorphism struct {
	domain   Algebra
	codomain EnvelopingAlgebra
}

// Domain returns the Lie algebra the morphism lifts from.
func (f *LiftMorphism) Domain() Algebra { return f.domain }

// Codomain returns the enveloping algebra the morphism lifts into.
func (f *LiftMorphism) Codomain() EnvelopingAlgebra { return f.codomain }

// Apply lifts one element.
func (f *LiftMorphism) Apply(x Element) (AssociativeElement, error) {
	return f.codomain.Embed(x)
}

func newLift(alg Algebra) (*LiftMorphism, error) {
	ec, ok := alg.(EnvelopingConstructor)
	if !ok {
		return nil, fmt.Errorf("Lift: %w", ErrNoEnveloping)
	}
	uea, err := ec.ConstructEnvelopingAlgebra()
	if err != nil {
		return nil, fmt.Errorf("Lift: %w", err)
	}
	return &LiftMorphism{domain: alg, codomain: uea}, nil
}

// LiftCache memoizes the lift morphism of one algebra instance. Embed a
// LiftCache in the algebra struct (with pointer receivers) and Lift will
// hand out the identical morphism on every call.
type LiftCache struct {
	once sync.Once
	m    *LiftMorphism
	err  error
}

// CachedLift builds the morphism on first use; later calls return the
// same instance, or the same construction error.
func (c *LiftCache) CachedLift(alg Algebra) (*LiftMorphism, error) {
	c.once.Do(func() { c.m, c.err = newLift(alg) })
	return c.m, c.err
}

type liftCacher interface {
	CachedLift(alg Algebra) (*LiftMorphism, error)
}

// Lift returns the lift morphism of alg, building it on first use when
// the algebra embeds a LiftCache. Algebras without the
// EnvelopingConstructor capability report ErrNoEnveloping.
func Lift(alg Algebra) (*LiftMorphism, error) {
	if c, ok := alg.(liftCacher); ok {
		return c.CachedLift(alg)
	}
	return newLift(alg)
}

// UniversalEnvelopingAlgebra returns the codomain of the lift.
func UniversalEnvelopingAlgebra(alg Algebra) (EnvelopingAlgebra, error) {
	f, err := Lift(alg)
	if err != nil {
		return nil, err
	}
	return f.Codomain(), nil
}
