// SPDX-License-Identifier: MIT

// Package matrix: closed-form arithmetic on Square values.
// All operations are pure: receivers are value types and every result is a
// fresh Square. Order mixing panics (programmer error, see doc.go).
package matrix

import (
	"fmt"
	"math"
)

// sameOrder guards binary operations; mixing orders is unreachable from
// validated callers.
func sameOrder(op string, a, b Square) {
	if a.n != b.n {
		panic(fmt.Sprintf("matrix: %s on mixed orders %d and %d", op, a.n, b.n))
	}
}

// Mul returns the matrix product s*o. Panics on order mismatch.
func (s Square) Mul(o Square) Square {
	sameOrder("Mul", s, o)
	var (
		out     = Square{n: s.n}
		i, j, k int
		acc     complex128
	)
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			acc = 0
			for k = 0; k < s.n; k++ {
				acc += s.a[i*s.n+k] * o.a[k*s.n+j]
			}
			out.a[i*s.n+j] = acc
		}
	}
	return out
}

// Add returns s+o entrywise. Panics on order mismatch.
func (s Square) Add(o Square) Square {
	sameOrder("Add", s, o)
	var (
		out = Square{n: s.n}
		k   int
	)
	for k = 0; k < s.n*s.n; k++ {
		out.a[k] = s.a[k] + o.a[k]
	}
	return out
}

// Sub returns s-o entrywise. Panics on order mismatch.
func (s Square) Sub(o Square) Square {
	sameOrder("Sub", s, o)
	var (
		out = Square{n: s.n}
		k   int
	)
	for k = 0; k < s.n*s.n; k++ {
		out.a[k] = s.a[k] - o.a[k]
	}
	return out
}

// Scale returns k*s entrywise.
func (s Square) Scale(k complex128) Square {
	var (
		out = Square{n: s.n}
		i   int
	)
	for i = 0; i < s.n*s.n; i++ {
		out.a[i] = k * s.a[i]
	}
	return out
}

// Neg returns -s.
func (s Square) Neg() Square { return s.Scale(-1) }

// Conj returns the entrywise complex conjugate of s.
func (s Square) Conj() Square {
	var (
		out = Square{n: s.n}
		k   int
	)
	for k = 0; k < s.n*s.n; k++ {
		out.a[k] = complex(real(s.a[k]), -imag(s.a[k]))
	}
	return out
}

// Transpose returns the transpose of s.
func (s Square) Transpose() Square {
	var (
		out  = Square{n: s.n}
		i, j int
	)
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			out.a[j*s.n+i] = s.a[i*s.n+j]
		}
	}
	return out
}

// Trace returns the sum of the diagonal entries.
func (s Square) Trace() complex128 {
	var (
		t complex128
		i int
	)
	for i = 0; i < s.n; i++ {
		t += s.a[i*s.n+i]
	}
	return t
}

// Det returns the determinant (closed form for orders 2 and 3).
func (s Square) Det() complex128 {
	if s.n == 2 {
		return s.a[0]*s.a[3] - s.a[1]*s.a[2]
	}
	// Sarrus on the 3x3 case.
	return s.a[0]*(s.a[4]*s.a[8]-s.a[5]*s.a[7]) -
		s.a[1]*(s.a[3]*s.a[8]-s.a[5]*s.a[6]) +
		s.a[2]*(s.a[3]*s.a[7]-s.a[4]*s.a[6])
}

// Inverse returns s^-1 via the adjugate. Returns ErrSingular when the
// determinant vanishes within Epsilon.
func (s Square) Inverse() (Square, error) {
	var det = s.Det()
	if modulus(det) < Epsilon {
		return Square{}, ErrSingular
	}
	if s.n == 2 {
		return New2(s.a[3], -s.a[1], -s.a[2], s.a[0]).Scale(1 / det), nil
	}
	// Adjugate of the 3x3 case: transposed cofactors.
	var adj = New3(
		s.a[4]*s.a[8]-s.a[5]*s.a[7], s.a[2]*s.a[7]-s.a[1]*s.a[8], s.a[1]*s.a[5]-s.a[2]*s.a[4],
		s.a[5]*s.a[6]-s.a[3]*s.a[8], s.a[0]*s.a[8]-s.a[2]*s.a[6], s.a[2]*s.a[3]-s.a[0]*s.a[5],
		s.a[3]*s.a[7]-s.a[4]*s.a[6], s.a[1]*s.a[6]-s.a[0]*s.a[7], s.a[0]*s.a[4]-s.a[1]*s.a[3],
	)
	return adj.Scale(1 / det), nil
}

// Pow returns s^k for any integer k; negative exponents invert first.
// Returns ErrSingular when a negative power of a singular matrix is
// requested. Complexity: O(log |k|) multiplications.
func (s Square) Pow(k int) (Square, error) {
	var (
		base = s
		err  error
	)
	if k < 0 {
		if base, err = s.Inverse(); err != nil {
			return Square{}, err
		}
		k = -k
	}
	var out Square
	if s.n == 2 {
		out = Identity2()
	} else {
		out = Identity3()
	}
	// Square-and-multiply.
	for k > 0 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}
	return out, nil
}

// MaxNorm returns the largest entry modulus.
func (s Square) MaxNorm() float64 {
	var (
		m, v float64
		k    int
	)
	for k = 0; k < s.n*s.n; k++ {
		if v = modulus(s.a[k]); v > m {
			m = v
		}
	}
	return m
}

// Dist returns the max-norm distance between s and o, or +Inf when the
// orders differ (distinct orders are never close).
func (s Square) Dist(o Square) float64 {
	if s.n != o.n {
		return math.Inf(1)
	}
	return s.Sub(o).MaxNorm()
}

// Equal reports entrywise equality within eps.
func (s Square) Equal(o Square, eps float64) bool {
	return s.Dist(o) < eps
}

// EqualModSign reports equality within eps up to a global sign, the
// equality notion of projective matrix groups.
func (s Square) EqualModSign(o Square, eps float64) bool {
	if s.n != o.n {
		return false
	}
	return s.Dist(o) < eps || s.Dist(o.Neg()) < eps
}
