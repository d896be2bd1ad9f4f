// SPDX-License-Identifier: MIT
package lie

import "strings"

// Axiom is one structural property an algebra may declare through the
// AxiomCarrier capability.
type Axiom uint8

const (
	// FiniteDimensional: the algebra is finite dimensional over its base.
	FiniteDimensional Axiom = 1 << iota
	// WithBasis: a distinguished basis is available.
	WithBasis
	// Abelian: every bracket vanishes.
	Abelian
	// Nilpotent: the lower central series terminates.
	Nilpotent
	// Solvable: the derived series terminates.
	Solvable
)

// AxiomSet is a bitset of declared axioms. The zero value declares
// nothing.
type AxiomSet uint8

// Axioms combines the given axioms into a set.
func Axioms(axs ...Axiom) AxiomSet {
	var s AxiomSet
	for _, a := range axs {
		s |= AxiomSet(a)
	}
	return s
}

// Has reports whether the set declares a.
func (s AxiomSet) Has(a Axiom) bool { return s&AxiomSet(a) != 0 }

// With returns the set extended by a.
func (s AxiomSet) With(a Axiom) AxiomSet { return s | AxiomSet(a) }

func (a Axiom) String() string {
	switch a {
	case FiniteDimensional:
		return "FiniteDimensional"
	case WithBasis:
		return "WithBasis"
	case Abelian:
		return "Abelian"
	case Nilpotent:
		return "Nilpotent"
	case Solvable:
		return "Solvable"
	default:
		return "axiom(invalid)"
	}
}

func (s AxiomSet) String() string {
	var names []string
	for _, a := range []Axiom{FiniteDimensional, WithBasis, Abelian, Nilpotent, Solvable} {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return "{}"
	}
	return "{" + strings.Join(names, ", ") + "}"
}
