package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hyplane/matrix"
)

func BenchmarkSquare_Mul3(b *testing.B) {
	var (
		x = matrix.NewReal3(1, 0, 0, 0, 17.0/8, 15.0/8, 0, 15.0/8, 17.0/8)
		y = matrix.NewReal3(0, 1, 0, -1, 0, 0, 0, 0, 1)
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkEigen2_ClosedForm(b *testing.B) {
	var m = matrix.NewReal2(4, 0, 0, 0.25)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = matrix.Eigen2(m)
	}
}

func BenchmarkEigen2_RobustFallback(b *testing.B) {
	var m = matrix.Identity2()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = matrix.Eigen2(m)
	}
}
