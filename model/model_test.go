// SPDX-License-Identifier: MIT
package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

// mustPoint unwraps a point constructor inside test tables. Fixture
// coordinates are hand-picked, so a constructor error is a broken
// fixture and panics.
func mustPoint(p model.Point, err error) model.Point {
	if err != nil {
		panic(err)
	}
	return p
}

// TestModel_Registry pins the per-model descriptor table.
func TestModel_Registry(t *testing.T) {
	require.Equal(t, []model.Model{model.UHP, model.PD, model.KM, model.HM}, model.Models())

	tests := []struct {
		m          model.Model
		tag        string
		dim        int
		projective bool
	}{
		{model.UHP, "UHP", 2, true},
		{model.PD, "PD", 2, true},
		{model.KM, "KM", 3, true},
		{model.HM, "HM", 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			require.True(t, tc.m.Valid())
			require.Equal(t, tc.tag, tc.m.String())
			require.Equal(t, tc.dim, tc.m.Dim())
			require.Equal(t, tc.projective, tc.m.Projective())
		})
	}

	require.False(t, model.Model(-1).Valid())
	require.False(t, model.Model(4).Valid())
	require.Equal(t, "model(invalid)", model.Model(99).String())
	require.Zero(t, model.Model(99).Dim())
}

func TestParse(t *testing.T) {
	for _, m := range model.Models() {
		got, err := model.Parse(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}

	got, err := model.Parse("  hm ")
	require.NoError(t, err)
	require.Equal(t, model.HM, got)

	_, err = model.Parse("poincare")
	require.ErrorIs(t, err, model.ErrUnknownModel)
}

func TestNewPoint_Validation(t *testing.T) {
	t.Run("UHP accepts interior and boundary", func(t *testing.T) {
		p, err := model.NewPointUHP(1 + 2i)
		require.NoError(t, err)
		require.Equal(t, model.UHP, p.Model())
		require.False(t, p.IsBoundary())

		b, err := model.NewPointUHP(3)
		require.NoError(t, err)
		require.True(t, b.IsBoundary())

		_, err = model.NewPointUHP(1 - 1i)
		require.ErrorIs(t, err, model.ErrInvalidPoint)
	})

	t.Run("infinity is a UHP boundary point", func(t *testing.T) {
		inf := model.Infinity()
		require.Equal(t, model.UHP, inf.Model())
		require.True(t, inf.IsInfinity())
		require.True(t, inf.IsBoundary())
		require.Equal(t, "infinity", inf.String())
	})

	t.Run("PD stays inside the closed disk", func(t *testing.T) {
		p, err := model.NewPointPD(0.3 - 0.4i)
		require.NoError(t, err)
		require.False(t, p.IsBoundary())

		b, err := model.NewPointPD(1i)
		require.NoError(t, err)
		require.True(t, b.IsBoundary())

		_, err = model.NewPointPD(1.001)
		require.ErrorIs(t, err, model.ErrInvalidPoint)
	})

	t.Run("KM stays inside the closed disk", func(t *testing.T) {
		_, err := model.NewPointKM(0.6, 0)
		require.NoError(t, err)

		b, err := model.NewPointKM(0, 1)
		require.NoError(t, err)
		require.True(t, b.IsBoundary())

		_, err = model.NewPointKM(0.8, 0.7)
		require.ErrorIs(t, err, model.ErrInvalidPoint)
	})

	t.Run("HM wants the upper sheet or the light cone", func(t *testing.T) {
		p, err := model.NewPointHM(0, 0.75, 1.25)
		require.NoError(t, err)
		require.False(t, p.IsBoundary())

		ideal, err := model.NewPointHM(1, 0, 1)
		require.NoError(t, err)
		require.True(t, ideal.IsBoundary())

		_, err = model.NewPointHM(0, 0.75, -1.25)
		require.ErrorIs(t, err, model.ErrInvalidPoint, "lower sheet")

		_, err = model.NewPointHM(1, 1, 1)
		require.ErrorIs(t, err, model.ErrInvalidPoint, "off both quadrics")
	})
}

func TestPoint_AccessorsAndEqual(t *testing.T) {
	p := mustPoint(model.NewPointUHP(1+2i))
	require.Equal(t, 1+2i, p.Complex())
	x, y := p.XY()
	require.Equal(t, 1.0, x)
	require.Equal(t, 2.0, y)
	require.Equal(t, "1+2i", p.String())

	h := mustPoint(model.NewPointHM(0, 0.75, 1.25))
	require.Equal(t, [3]float64{0, 0.75, 1.25}, h.Vec())
	require.Equal(t, "(0, 0.75, 1.25)", h.String())

	k := mustPoint(model.NewPointKM(0.5, -0.25))
	require.Equal(t, "(0.5, -0.25)", k.String())

	// Fixed-point formulas produce coordinates like 0/-1.5; the negative
	// zero must not show up in the rendering.
	negZero := math.Copysign(0, -1)
	require.Equal(t, "0", mustPoint(model.NewPointUHP(complex(negZero, 0))).String())
	require.Equal(t, "(0, 1)", mustPoint(model.NewPointKM(negZero, 1)).String())
	require.Equal(t, "(0, 1, 1)", mustPoint(model.NewPointHM(negZero, 1, 1)).String())

	require.True(t, p.Equal(mustPoint(model.NewPointUHP(1+2i+1e-12))))
	require.False(t, p.Equal(mustPoint(model.NewPointUHP(1+2.5i))))
	require.False(t, p.Equal(mustPoint(model.NewPointPD(0))), "different models never compare equal")
	require.True(t, model.Infinity().Equal(model.Infinity()))
	require.False(t, model.Infinity().Equal(p))
}

func TestNewGeodesic(t *testing.T) {
	var (
		a = mustPoint(model.NewPointUHP(-1))
		b = mustPoint(model.NewPointUHP(1))
	)
	g, err := model.NewGeodesic(model.UHP, a, b)
	require.NoError(t, err)
	require.Equal(t, model.UHP, g.Model())
	require.True(t, g.Start().Equal(a))
	require.True(t, g.End().Equal(b))
	require.Equal(t, "geodesic in UHP from -1 to 1", g.String())

	pd := mustPoint(model.NewPointPD(0))
	_, err = model.NewGeodesic(model.UHP, a, pd)
	require.ErrorIs(t, err, model.ErrModelMismatch)

	_, err = model.NewGeodesic(model.UHP, a, a)
	require.ErrorIs(t, err, model.ErrInvalidPoint)
}

func TestGeodesic_ToModel(t *testing.T) {
	var (
		a    = mustPoint(model.NewPointUHP(-1))
		b    = mustPoint(model.NewPointUHP(1))
		g, _ = model.NewGeodesic(model.UHP, a, b)
	)
	k, err := g.ToModel(model.KM)
	require.NoError(t, err)
	require.Equal(t, model.KM, k.Model())
	require.True(t, k.Start().Equal(mustPoint(model.NewPointKM(-1, 0))))
	require.True(t, k.End().Equal(mustPoint(model.NewPointKM(1, 0))))

	back, err := k.ToModel(model.UHP)
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestValidateIsometry(t *testing.T) {
	var (
		boost   = matrix.NewReal2(2, 0, 0, 0.5)
		boostPD = matrix.New2(1.25, 0.75i, -0.75i, 1.25)
		mirror  = matrix.New2(0, 1i, 1i, 0)
		lorentz = matrix.NewReal3(1, 0, 0, 0, 2.125, 1.875, 0, 1.875, 2.125)
	)

	t.Run("UHP", func(t *testing.T) {
		require.NoError(t, model.ValidateIsometry(model.UHP, boost))
		require.NoError(t, model.ValidateIsometry(model.UHP, matrix.NewReal2(-1, 0, 0, 1)))
		require.ErrorIs(t, model.ValidateIsometry(model.UHP, matrix.New2(1i, 0, 0, 1)), model.ErrInvalidIsometry, "complex entries")
		require.ErrorIs(t, model.ValidateIsometry(model.UHP, matrix.NewReal2(1, 1, 1, 1)), model.ErrInvalidIsometry, "singular")
	})

	t.Run("PD", func(t *testing.T) {
		require.NoError(t, model.ValidateIsometry(model.PD, boostPD))
		require.NoError(t, model.ValidateIsometry(model.PD, mirror), "i*M has the shape")
		require.ErrorIs(t, model.ValidateIsometry(model.PD, boost), model.ErrInvalidIsometry, "a UHP matrix is not a disk matrix")
		require.ErrorIs(t, model.ValidateIsometry(model.PD, matrix.New2(1, 1, 1, 1)), model.ErrInvalidIsometry, "degenerate |a| = |b|")

		// The conjugate-mirror shape with |a| < |b| carries the disk onto
		// its exterior: [[0.5, 1], [1, 0.5]] sends the centre to b/d = 2.
		// Not an isometry even though the shape sits in U(1,1).
		require.ErrorIs(t, model.ValidateIsometry(model.PD, matrix.NewReal2(0.5, 1, 1, 0.5)), model.ErrInvalidIsometry, "exterior swap, direct shape")
		require.ErrorIs(t, model.ValidateIsometry(model.PD, matrix.New2(2, 1, 1, 2).Scale(-1i)), model.ErrInvalidIsometry, "exterior swap, i*M shape")
	})

	t.Run("KM and HM", func(t *testing.T) {
		for _, m := range []model.Model{model.KM, model.HM} {
			require.NoError(t, model.ValidateIsometry(m, lorentz))
			require.NoError(t, model.ValidateIsometry(m, matrix.NewReal3(-1, 0, 0, 0, -1, 0, 0, 0, 1)))
			require.ErrorIs(t, model.ValidateIsometry(m, matrix.Identity3().Scale(2)), model.ErrInvalidIsometry)
		}

		// diag(1,1,-1) preserves the Lorentz form but swaps the sheets:
		// a legal KM representative, not a legal HM one.
		swap := matrix.NewReal3(1, 0, 0, 0, 1, 0, 0, 0, -1)
		require.NoError(t, model.ValidateIsometry(model.KM, swap))
		require.ErrorIs(t, model.ValidateIsometry(model.HM, swap), model.ErrInvalidIsometry)
	})

	t.Run("order mismatch", func(t *testing.T) {
		require.ErrorIs(t, model.ValidateIsometry(model.UHP, matrix.Identity3()), model.ErrInvalidIsometry)
		require.ErrorIs(t, model.ValidateIsometry(model.HM, matrix.Identity2()), model.ErrInvalidIsometry)
	})

	require.ErrorIs(t, model.ValidateIsometry(model.Model(9), matrix.Identity2()), model.ErrUnknownModel)
}

func TestOrientationPreserving(t *testing.T) {
	require.True(t, model.OrientationPreserving(model.UHP, matrix.NewReal2(2, 0, 0, 0.5)))
	require.False(t, model.OrientationPreserving(model.UHP, matrix.NewReal2(-1, 0, 0, 1)))

	require.True(t, model.OrientationPreserving(model.PD, matrix.New2(1.25, 0.75i, -0.75i, 1.25)))
	require.False(t, model.OrientationPreserving(model.PD, matrix.New2(0, 1i, 1i, 0)))

	reflect3 := matrix.NewReal3(-1, 0, 0, 0, 1, 0, 0, 0, 1)
	require.False(t, model.OrientationPreserving(model.KM, reflect3))
	require.False(t, model.OrientationPreserving(model.HM, reflect3))

	// In KM the sign is read off the upper-sheet representative: M and -M
	// name the same isometry, and a bare 3x3 determinant would disagree
	// between them.
	rot := matrix.NewReal3(-1, 0, 0, 0, -1, 0, 0, 0, 1)
	require.True(t, model.OrientationPreserving(model.KM, rot))
	require.True(t, model.OrientationPreserving(model.KM, rot.Neg()))
}
