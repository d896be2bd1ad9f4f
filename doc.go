// Package hyplane is your in-memory toolkit for exact hyperbolic-plane
// geometry — isometry classification, fixed-point algebra and model
// conversion — plus a compact Lie-algebra capability contract.
//
// 🚀 What is hyplane?
//
//	A small, deterministic library that brings together:
//		• Four coordinate models: upper half-plane (UHP), Poincaré disk (PD),
//		  Klein model (KM), hyperboloid model (HM), with lossless conversion
//		  of points, geodesics and isometry matrices between all of them
//		• Isometry engine: classify any isometry matrix as identity, elliptic,
//		  parabolic, hyperbolic, reflection or orientation-reversing
//		  hyperbolic; derive fixed points, translation length, axis and
//		  attracting/repelling dynamics
//		• Inverse construction: build the unique hyperbolic isometry with a
//		  prescribed repelling/attracting pair of ideal points
//		• Lie algebra contract: bracket coercion, cached lift to the universal
//		  enveloping algebra, abelian checks and axiom validators
//
// ✨ Why choose hyplane?
//
//   - Deterministic numerics – one fixed epsilon, ties broken toward the
//     degenerate class, no silent clamping
//   - Rock-solid error taxonomy – sentinel errors per package, always
//     wrapped with context, inspectable via errors.Is
//   - Immutable values – every operation returns a new value; safe for
//     concurrent readers without locks
//   - Pure Go core – closed-form 2×2/3×3 arithmetic, with a gonum-backed
//     eigen fallback only where closed forms degenerate
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — fixed-order complex matrices, determinants, ordered eigen
//	model/    — the four models: registry, points, geodesics, conversions
//	isometry/ — classification, fixed points, translation length, axis
//	lie/      — Lie algebra capability contract, bracket and lift morphism
//
// Quick ASCII example:
//
//	    UHP                PD
//	  z-plane   Cayley   unit disk
//	    │  ↑    ────────►  ( · )
//	  ──┴──┴──  ◄────────   ‾‾‾
//
//	the same isometry, two matrix representations, one classification.
//
// A command-line front end lives in cmd/hyplane (classify, convert, fixed,
// batch). Dive into the package docs for formulas, error contracts and
// runnable examples.
//
//	go get github.com/katalvlaran/hyplane
package hyplane
