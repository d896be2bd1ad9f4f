// SPDX-License-Identifier: MIT

// Package lie: axiom validators over a finite element sample, for
// implementers to run inside their own test suites.
package lie

import (
	"fmt"
)

// ValidateAntisymmetry checks [x, x] = 0 for every sampled element.
func ValidateAntisymmetry(alg Algebra, elems []Element) error {
	for _, x := range elems {
		if !alg.BracketElements(x, x).IsZero() {
			return fmt.Errorf("antisymmetry: [%v, %v] is non-zero: %w", x, x, ErrAxiomViolated)
		}
	}
	return nil
}

// ValidateJacobi checks [x,[y,z]] + [y,[z,x]] + [z,[x,y]] = 0 over the
// sampled triples. Triples with x = y are skipped; they vanish as soon
// as antisymmetry holds.
func ValidateJacobi(alg Algebra, elems []Element) error {
	for _, x := range elems {
		for _, y := range elems {
			if x.Equal(y) {
				continue
			}
			for _, z := range elems {
				var sum = alg.BracketElements(x, alg.BracketElements(y, z)).
					Add(alg.BracketElements(y, alg.BracketElements(z, x))).
					Add(alg.BracketElements(z, alg.BracketElements(x, y)))
				if !sum.IsZero() {
					return fmt.Errorf("jacobi: cyclic sum over (%v, %v, %v) is non-zero: %w", x, y, z, ErrAxiomViolated)
				}
			}
		}
	}
	return nil
}

// ValidateDistributivity checks the bracket distributes over addition in
// both slots over the sampled triples.
func ValidateDistributivity(alg Algebra, elems []Element) error {
	for _, x := range elems {
		for _, y := range elems {
			for _, z := range elems {
				var (
					left  = alg.BracketElements(x, y.Add(z))
					right = alg.BracketElements(x, y).Add(alg.BracketElements(x, z))
				)
				if !left.Equal(right) {
					return fmt.Errorf("distributivity: [%v, %v + %v] splits wrong: %w", x, y, z, ErrAxiomViolated)
				}
				left = alg.BracketElements(x.Add(y), z)
				right = alg.BracketElements(x, z).Add(alg.BracketElements(y, z))
				if !left.Equal(right) {
					return fmt.Errorf("distributivity: [%v + %v, %v] splits wrong: %w", x, y, z, ErrAxiomViolated)
				}
			}
		}
	}
	return nil
}
