// SPDX-License-Identifier: MIT
package lie_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyplane/lie"
	"github.com/katalvlaran/hyplane/matrix"
)

// slElement is a traceless real 2x2 matrix, an element of sl2.
type slElement struct{ m matrix.Square }

func (e slElement) Add(o lie.Element) lie.Element { return slElement{e.m.Add(o.(slElement).m)} }
func (e slElement) Neg() lie.Element              { return slElement{e.m.Neg()} }
func (e slElement) IsZero() bool                  { return e.m.MaxNorm() < matrix.Epsilon }
func (e slElement) Equal(o lie.Element) bool {
	oe, ok := o.(slElement)
	return ok && e.m.Equal(oe.m, matrix.Epsilon)
}
func (e slElement) String() string { return e.m.String() }

// ToVector returns (e, f, h) coordinates in the basis E, F, H.
func (e slElement) ToVector() []float64 {
	return []float64{real(e.m.At(0, 1)), real(e.m.At(1, 0)), real(e.m.At(0, 0))}
}

var (
	slE = slElement{matrix.NewReal2(0, 1, 0, 0)}
	slF = slElement{matrix.NewReal2(0, 0, 1, 0)}
	slH = slElement{matrix.NewReal2(1, 0, 0, -1)}
)

// sl2 is the traceless 2x2 matrix algebra under the commutator, carrying
// every optional capability the contract knows about.
type sl2 struct {
	lie.LiftCache
}

func newSL2() *sl2 { return &sl2{} }

func (a *sl2) Coerce(v any) (lie.Element, error) {
	switch t := v.(type) {
	case slElement:
		return t, nil
	case nil:
		return a.Zero(), nil
	case int:
		if t == 0 {
			return a.Zero(), nil
		}
	case float64:
		if t == 0 {
			return a.Zero(), nil
		}
	case []float64:
		return a.FromVector(t)
	case matrix.Square:
		if t.Order() == 2 && t.IsReal(matrix.Epsilon) && cmplx.Abs(t.Trace()) < matrix.Epsilon {
			return slElement{t}, nil
		}
	}
	return nil, fmt.Errorf("sl2: cannot absorb %v: %w", v, lie.ErrCoercion)
}

func (a *sl2) BracketElements(x, y lie.Element) lie.Element {
	var xm, ym = x.(slElement).m, y.(slElement).m
	return slElement{xm.Mul(ym).Sub(ym.Mul(xm))}
}

func (a *sl2) Zero() lie.Element { return slElement{matrix.NewReal2(0, 0, 0, 0)} }

func (a *sl2) Generators() ([]lie.Element, error) {
	return []lie.Element{slE, slF, slH}, nil
}

func (a *sl2) Dimension() int { return 3 }

func (a *sl2) FromVector(v []float64) (lie.Element, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("sl2: coordinate vector has length %d, want 3: %w", len(v), lie.ErrCoercion)
	}
	return slElement{matrix.NewReal2(v[2], v[0], v[1], -v[2])}, nil
}

// KillingForm of sl2 is 4*tr(xy).
func (a *sl2) KillingForm(x, y lie.Element) (float64, error) {
	xe, okx := x.(slElement)
	ye, oky := y.(slElement)
	if !okx || !oky {
		return 0, fmt.Errorf("sl2: killing form operands: %w", lie.ErrCoercion)
	}
	return 4 * real(xe.m.Mul(ye.m).Trace()), nil
}

func (a *sl2) IsSolvable() bool  { return false }
func (a *sl2) IsNilpotent() bool { return false }

func (a *sl2) ConstructEnvelopingAlgebra() (lie.EnvelopingAlgebra, error) {
	return mat2Enveloping{}, nil
}

func (a *sl2) Axioms() lie.AxiomSet {
	return lie.Axioms(lie.FiniteDimensional, lie.WithBasis)
}

// assocMat is a full 2x2 matrix viewed as an associative algebra element.
type assocMat struct{ m matrix.Square }

func (e assocMat) Mul(o lie.AssociativeElement) lie.AssociativeElement {
	return assocMat{e.m.Mul(o.(assocMat).m)}
}
func (e assocMat) Add(o lie.AssociativeElement) lie.AssociativeElement {
	return assocMat{e.m.Add(o.(assocMat).m)}
}
func (e assocMat) Neg() lie.AssociativeElement { return assocMat{e.m.Neg()} }
func (e assocMat) Equal(o lie.AssociativeElement) bool {
	oe, ok := o.(assocMat)
	return ok && e.m.Equal(oe.m, matrix.Epsilon)
}

// mat2Enveloping embeds sl2 into the full 2x2 matrix algebra, where the
// bracket becomes the matrix commutator.
type mat2Enveloping struct{}

func (mat2Enveloping) Embed(x lie.Element) (lie.AssociativeElement, error) {
	e, ok := x.(slElement)
	if !ok {
		return nil, fmt.Errorf("mat2: embed %v: %w", x, lie.ErrCoercion)
	}
	return assocMat{e.m}, nil
}

// heisElement is a strictly upper triangular real 3x3 matrix.
type heisElement struct{ m matrix.Square }

func (e heisElement) Add(o lie.Element) lie.Element { return heisElement{e.m.Add(o.(heisElement).m)} }
func (e heisElement) Neg() lie.Element              { return heisElement{e.m.Neg()} }
func (e heisElement) IsZero() bool                  { return e.m.MaxNorm() < matrix.Epsilon }
func (e heisElement) Equal(o lie.Element) bool {
	oe, ok := o.(heisElement)
	return ok && e.m.Equal(oe.m, matrix.Epsilon)
}
func (e heisElement) String() string { return e.m.String() }

var (
	heisX = heisElement{matrix.NewReal3(0, 1, 0, 0, 0, 0, 0, 0, 0)}
	heisY = heisElement{matrix.NewReal3(0, 0, 0, 0, 0, 1, 0, 0, 0)}
	heisZ = heisElement{matrix.NewReal3(0, 0, 1, 0, 0, 0, 0, 0, 0)}
)

// heisenberg is the 3-dimensional nilpotent algebra with [X,Y] = Z. It
// carries solvability answers and declared axioms but no enveloping
// construction.
type heisenberg struct {
	lie.LiftCache
}

func newHeisenberg() *heisenberg { return &heisenberg{} }

func (a *heisenberg) Coerce(v any) (lie.Element, error) {
	switch t := v.(type) {
	case heisElement:
		return t, nil
	case nil:
		return a.Zero(), nil
	case int:
		if t == 0 {
			return a.Zero(), nil
		}
	}
	return nil, fmt.Errorf("heisenberg: cannot absorb %v: %w", v, lie.ErrCoercion)
}

func (a *heisenberg) BracketElements(x, y lie.Element) lie.Element {
	var xm, ym = x.(heisElement).m, y.(heisElement).m
	return heisElement{xm.Mul(ym).Sub(ym.Mul(xm))}
}

func (a *heisenberg) Zero() lie.Element {
	return heisElement{matrix.NewReal3(0, 0, 0, 0, 0, 0, 0, 0, 0)}
}

func (a *heisenberg) Generators() ([]lie.Element, error) {
	return []lie.Element{heisX, heisY, heisZ}, nil
}

func (a *heisenberg) IsSolvable() bool  { return true }
func (a *heisenberg) IsNilpotent() bool { return true }

func (a *heisenberg) Axioms() lie.AxiomSet {
	return lie.Axioms(lie.FiniteDimensional, lie.WithBasis, lie.Nilpotent, lie.Solvable)
}

// diag is an element of the plain abelian algebra of diagonal pairs.
type diag struct{ x, y float64 }

func (d diag) Add(o lie.Element) lie.Element {
	od := o.(diag)
	return diag{d.x + od.x, d.y + od.y}
}
func (d diag) Neg() lie.Element { return diag{-d.x, -d.y} }
func (d diag) IsZero() bool {
	return math.Abs(d.x) < matrix.Epsilon && math.Abs(d.y) < matrix.Epsilon
}
func (d diag) Equal(o lie.Element) bool {
	od, ok := o.(diag)
	return ok && diag{d.x - od.x, d.y - od.y}.IsZero()
}
func (d diag) String() string { return fmt.Sprintf("diag(%g, %g)", d.x, d.y) }

// diagonalAlgebra is abelian by computation: diagonal matrices commute,
// so every bracket vanishes. No optional capabilities.
type diagonalAlgebra struct{}

func (a diagonalAlgebra) Coerce(v any) (lie.Element, error) {
	switch t := v.(type) {
	case diag:
		return t, nil
	case nil:
		return a.Zero(), nil
	case int:
		if t == 0 {
			return a.Zero(), nil
		}
	}
	return nil, fmt.Errorf("diagonal: cannot absorb %v: %w", v, lie.ErrCoercion)
}

func (a diagonalAlgebra) BracketElements(x, y lie.Element) lie.Element { return diag{} }

func (a diagonalAlgebra) Zero() lie.Element { return diag{} }

func (a diagonalAlgebra) Generators() ([]lie.Element, error) {
	return []lie.Element{diag{1, 0}, diag{0, 1}}, nil
}

// axiomAbelian declares the Abelian axiom while refusing to enumerate
// its generators, so only the axiom short-circuit can answer IsAbelian.
type axiomAbelian struct{ diagonalAlgebra }

func (axiomAbelian) Generators() ([]lie.Element, error) {
	return nil, fmt.Errorf("axiomAbelian: %w", lie.ErrInfiniteGenerators)
}

func (axiomAbelian) Axioms() lie.AxiomSet { return lie.Axioms(lie.Abelian) }

// infiniteSL behaves like sl2 but reports a non-enumerable generating
// set.
type infiniteSL struct{ *sl2 }

func (infiniteSL) Generators() ([]lie.Element, error) {
	return nil, fmt.Errorf("infiniteSL: %w", lie.ErrInfiniteGenerators)
}

// badAlgebra replaces the commutator with the plain matrix product,
// breaking antisymmetry and the Jacobi identity.
type badAlgebra struct{ *sl2 }

func (badAlgebra) BracketElements(x, y lie.Element) lie.Element {
	return slElement{x.(slElement).m.Mul(y.(slElement).m)}
}
