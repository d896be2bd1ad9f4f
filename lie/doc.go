// Package lie is the category contract for Lie algebras: the minimal
// interface a concrete algebra implements, the bracket with operand
// coercion, the cached lift into a universal enveloping algebra, and the
// optional capabilities richer algebras may advertise.
//
// What it does:
//   - Algebra is the required core: coercion into the element type, the
//     bilinear antisymmetric bracket, the zero element, and generator
//     enumeration. Element is the matching arithmetic contract.
//   - Bracket coerces both operands first, so callers may pass elements,
//     a bare zero, or (for module-carrying algebras) coordinate vectors.
//   - Lift builds the structure-preserving morphism into the enveloping
//     algebra lazily and caches it per algebra instance; repeated calls
//     return the identical morphism. UniversalEnvelopingAlgebra is its
//     codomain.
//   - Optional behavior (free-module view, Killing form, solvability,
//     enveloping construction, declared axioms) lives in small capability
//     interfaces discovered by type assertion via the Has* helpers, never
//     by reflection.
//   - ValidateAntisymmetry, ValidateJacobi and ValidateDistributivity
//     check the defining identities on a finite element sample, for
//     implementers to run inside their own suites.
//
// Determinism: everything is a pure function of the algebra's bracket
// except the lift morphism, which is memoized once under sync.Once and is
// safe for concurrent readers.
//
// Error policy: sentinel errors (ErrInfiniteGenerators, ErrCoercion,
// ErrNoEnveloping, ErrNotImplemented, ErrAxiomViolated) are wrapped with
// context at call sites; inspect with errors.Is.
package lie
