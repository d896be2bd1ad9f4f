// SPDX-License-Identifier: MIT
package lie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyplane/lie"
	"github.com/katalvlaran/hyplane/matrix"
)

func TestBracket_KnownRelations(t *testing.T) {
	a := newSL2()

	got, err := lie.Bracket(a, slE, slF)
	require.NoError(t, err)
	require.True(t, slH.Equal(got), "[E, F] = H, got %v", got)

	got, err = lie.Bracket(a, slH, slE)
	require.NoError(t, err)
	require.True(t, slE.Add(slE).Equal(got), "[H, E] = 2E, got %v", got)

	got, err = lie.Bracket(a, slH, slF)
	require.NoError(t, err)
	require.True(t, slF.Add(slF).Neg().Equal(got), "[H, F] = -2F, got %v", got)
}

func TestBracket_CoercesOperands(t *testing.T) {
	a := newSL2()

	t.Run("coordinate vectors", func(t *testing.T) {
		got, err := lie.Bracket(a, []float64{1, 0, 0}, []float64{0, 1, 0})
		require.NoError(t, err)
		require.True(t, slH.Equal(got))
	})
	t.Run("raw traceless matrix", func(t *testing.T) {
		got, err := lie.Bracket(a, matrix.NewReal2(1, 0, 0, -1), slE)
		require.NoError(t, err)
		require.True(t, slE.Add(slE).Equal(got))
	})
	t.Run("zero operands", func(t *testing.T) {
		got, err := lie.Bracket(a, slE, 0)
		require.NoError(t, err)
		require.True(t, got.IsZero())

		got, err = lie.Bracket(a, 0, slE)
		require.NoError(t, err)
		require.True(t, got.IsZero())

		got, err = lie.Bracket(a, nil, slE)
		require.NoError(t, err)
		require.True(t, got.IsZero())
	})
	t.Run("rejections", func(t *testing.T) {
		_, err := lie.Bracket(a, "nope", slE)
		require.ErrorIs(t, err, lie.ErrCoercion)

		_, err = lie.Bracket(a, matrix.NewReal2(1, 0, 0, 1), slE)
		require.ErrorIs(t, err, lie.ErrCoercion, "non-traceless matrix")

		_, err = lie.Bracket(a, slE, []float64{1, 2})
		require.ErrorIs(t, err, lie.ErrCoercion, "wrong vector length")

		_, err = lie.Bracket(a, slE, 7)
		require.ErrorIs(t, err, lie.ErrCoercion, "non-zero scalar")
	})
}

func TestIsAbelian(t *testing.T) {
	t.Run("sl2 is not abelian", func(t *testing.T) {
		got, err := lie.IsAbelian(newSL2())
		require.NoError(t, err)
		require.False(t, got)
	})
	t.Run("diagonal pairs are abelian", func(t *testing.T) {
		got, err := lie.IsAbelian(diagonalAlgebra{})
		require.NoError(t, err)
		require.True(t, got)
	})
	t.Run("declared axiom short-circuits enumeration", func(t *testing.T) {
		// Generators are not enumerable here, so only the Abelian axiom
		// can produce the answer.
		got, err := lie.IsAbelian(axiomAbelian{})
		require.NoError(t, err)
		require.True(t, got)
	})
	t.Run("infinite generators", func(t *testing.T) {
		_, err := lie.IsAbelian(infiniteSL{newSL2()})
		require.ErrorIs(t, err, lie.ErrInfiniteGenerators)
	})
	t.Run("commutative is the same question", func(t *testing.T) {
		got, err := lie.IsCommutative(diagonalAlgebra{})
		require.NoError(t, err)
		require.True(t, got)

		_, err = lie.IsCommutative(infiniteSL{newSL2()})
		require.ErrorIs(t, err, lie.ErrInfiniteGenerators)
	})
}

func TestSubalgebra_NotImplemented(t *testing.T) {
	_, err := lie.Subalgebra(newSL2(), []lie.Element{slE})
	require.ErrorIs(t, err, lie.ErrNotImplemented)
}

func TestCapabilities(t *testing.T) {
	var (
		full = newSL2()
		bare = diagonalAlgebra{}
	)
	require.True(t, lie.HasModule(full))
	require.True(t, lie.HasKillingForm(full))
	require.True(t, lie.HasSolvability(full))
	require.True(t, lie.HasEnveloping(full))
	require.True(t, lie.HasAxioms(full))

	require.False(t, lie.HasModule(bare))
	require.False(t, lie.HasKillingForm(bare))
	require.False(t, lie.HasSolvability(bare))
	require.False(t, lie.HasEnveloping(bare))
	require.False(t, lie.HasAxioms(bare))

	require.True(t, lie.HasVector(slE))
	require.False(t, lie.HasVector(diag{}))

	heis := newHeisenberg()
	require.True(t, lie.HasSolvability(heis))
	require.True(t, heis.IsSolvable())
	require.True(t, heis.IsNilpotent())
	require.False(t, lie.HasEnveloping(heis))
}

func TestKillingForm(t *testing.T) {
	a := newSL2()

	k, err := a.KillingForm(slH, slH)
	require.NoError(t, err)
	require.InDelta(t, 8, k, 1e-12)

	k, err = a.KillingForm(slE, slF)
	require.NoError(t, err)
	require.InDelta(t, 4, k, 1e-12)

	k, err = a.KillingForm(slE, slE)
	require.NoError(t, err)
	require.InDelta(t, 0, k, 1e-12)
}

func TestModuleRoundTrip(t *testing.T) {
	a := newSL2()
	require.Equal(t, 3, a.Dimension())

	el, err := a.FromVector([]float64{2, -1, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{2, -1, 0.5}, el.(lie.Vectorizable).ToVector())

	_, err = a.FromVector([]float64{1})
	require.ErrorIs(t, err, lie.ErrCoercion)
}

func TestAxiomSet(t *testing.T) {
	s := lie.Axioms(lie.FiniteDimensional, lie.WithBasis)
	require.True(t, s.Has(lie.FiniteDimensional))
	require.True(t, s.Has(lie.WithBasis))
	require.False(t, s.Has(lie.Abelian))

	s = s.With(lie.Nilpotent)
	require.True(t, s.Has(lie.Nilpotent))

	require.Equal(t, "{FiniteDimensional, WithBasis, Nilpotent}", s.String())
	require.Equal(t, "{}", lie.AxiomSet(0).String())
	require.Equal(t, "Abelian", lie.Abelian.String())
	require.Equal(t, "axiom(invalid)", lie.Axiom(0).String())

	require.Equal(t, lie.Axioms(lie.FiniteDimensional, lie.WithBasis, lie.Nilpotent, lie.Solvable),
		newHeisenberg().Axioms())
}
