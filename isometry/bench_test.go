// SPDX-License-Identifier: MIT
package isometry_test

import (
	"testing"

	"github.com/katalvlaran/hyplane/isometry"
	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

func BenchmarkClassification(b *testing.B) {
	iso, err := isometry.New(model.UHP, matrix.NewReal2(3, 1, 2, 1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = iso.Classification()
	}
}

func BenchmarkClassification_KM(b *testing.B) {
	// The cached half-plane conversion pays off after the first call.
	uhp, err := isometry.New(model.UHP, matrix.NewReal2(3, 1, 2, 1))
	if err != nil {
		b.Fatal(err)
	}
	iso, err := uhp.ToModel(model.KM)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = iso.Classification()
	}
}

func BenchmarkFixedPointSet(b *testing.B) {
	iso, err := isometry.New(model.UHP, matrix.NewReal2(2, 1, 1, 2))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = iso.FixedPointSet()
	}
}

func BenchmarkToModel(b *testing.B) {
	iso, err := isometry.New(model.UHP, matrix.NewReal2(2, 0, 0, 0.5))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = iso.ToModel(model.HM)
	}
}

func BenchmarkFromFixedPoints(b *testing.B) {
	repel, err := model.NewPointUHP(2)
	if err != nil {
		b.Fatal(err)
	}
	attract, err := model.NewPointUHP(0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = isometry.FromFixedPoints(model.UHP, repel, attract)
	}
}
