// SPDX-License-Identifier: MIT

// Package matrix: the Square value type and its constructors.
// Arithmetic lives in ops.go, eigen decomposition in eigen.go, errors in
// errors.go per the global conventions.
package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// Epsilon is the package-wide numeric tolerance. Every comparison in the
// isometry engine (matrix equality, singularity, classification ties,
// boundary membership) uses this single constant; it is deliberately not
// configurable per call.
const Epsilon = 1e-9

// maxOrder bounds the backing array; orders 2 and 3 share it.
const maxOrder = 3

// Square is an immutable complex square matrix of order 2 or 3.
// The zero value is not useful; construct via New, New2, New3, NewReal2,
// NewReal3, Identity2 or Identity3. Entries are stored row-major.
type Square struct {
	n int
	a [maxOrder * maxOrder]complex128
}

// New builds a Square of the given order from row-major entries.
// Returns ErrBadOrder unless order is 2 or 3, ErrBadShape unless
// len(entries) == order*order.
func New(order int, entries []complex128) (Square, error) {
	if order != 2 && order != 3 {
		return Square{}, ErrBadOrder
	}
	if len(entries) != order*order {
		return Square{}, ErrBadShape
	}
	var s = Square{n: order}
	copy(s.a[:], entries)
	return s, nil
}

// New2 builds an order-2 Square from its four entries (row-major).
func New2(a11, a12, a21, a22 complex128) Square {
	return Square{n: 2, a: [maxOrder * maxOrder]complex128{a11, a12, a21, a22}}
}

// New3 builds an order-3 Square from its nine entries (row-major).
func New3(a11, a12, a13, a21, a22, a23, a31, a32, a33 complex128) Square {
	return Square{n: 3, a: [maxOrder * maxOrder]complex128{
		a11, a12, a13,
		a21, a22, a23,
		a31, a32, a33,
	}}
}

// NewReal2 builds an order-2 Square from real entries.
func NewReal2(a11, a12, a21, a22 float64) Square {
	return New2(complex(a11, 0), complex(a12, 0), complex(a21, 0), complex(a22, 0))
}

// NewReal3 builds an order-3 Square from real entries.
func NewReal3(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) Square {
	return New3(
		complex(a11, 0), complex(a12, 0), complex(a13, 0),
		complex(a21, 0), complex(a22, 0), complex(a23, 0),
		complex(a31, 0), complex(a32, 0), complex(a33, 0),
	)
}

// Identity2 returns the order-2 identity matrix.
func Identity2() Square { return NewReal2(1, 0, 0, 1) }

// Identity3 returns the order-3 identity matrix.
func Identity3() Square { return NewReal3(1, 0, 0, 0, 1, 0, 0, 0, 1) }

// Order reports the order (2 or 3) of s.
func (s Square) Order() int { return s.n }

// At returns the entry at row i, column j (0-based).
// Panics if the index is outside the order; constructed values make that a
// programmer error, never a data error.
func (s Square) At(i, j int) complex128 {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		panic(fmt.Sprintf("matrix: At(%d,%d) out of range for order %d", i, j, s.n))
	}
	return s.a[i*s.n+j]
}

// Entries returns a copy of the row-major entries.
func (s Square) Entries() []complex128 {
	var out = make([]complex128, s.n*s.n)
	copy(out, s.a[:s.n*s.n])
	return out
}

// IsReal reports whether every entry's imaginary part is below eps in
// absolute value.
func (s Square) IsReal(eps float64) bool {
	var k int
	for k = 0; k < s.n*s.n; k++ {
		if imagAbs(s.a[k]) > eps {
			return false
		}
	}
	return true
}

// RealPart returns s with every imaginary part dropped.
func (s Square) RealPart() Square {
	var out = s
	var k int
	for k = 0; k < s.n*s.n; k++ {
		out.a[k] = complex(real(s.a[k]), 0)
	}
	return out
}

// String renders the matrix one bracketed row per line. Entries use %g
// formatting; purely real and purely imaginary values print without the
// redundant component.
func (s Square) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < s.n; i++ {
		b.WriteByte('[')
		for j = 0; j < s.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(FormatEntry(s.a[i*s.n+j]))
		}
		b.WriteByte(']')
		if i < s.n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatEntry renders a single complex entry the way String does: real
// values as %g, purely imaginary values as %gi, everything else as a+bi.
// Components below Epsilon are treated as zero for display only.
func FormatEntry(c complex128) string {
	var re, im = real(c), imag(c)
	// The negative zeros of float arithmetic (0/-1.5 and friends) would
	// render as "-0" under %g.
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	if im > -Epsilon && im < Epsilon {
		return fmt.Sprintf("%g", re)
	}
	if re > -Epsilon && re < Epsilon {
		return fmt.Sprintf("%gi", im)
	}
	return fmt.Sprintf("%g%+gi", re, im)
}

// imagAbs is |imag(c)| without pulling the full cmplx.Abs cost.
func imagAbs(c complex128) float64 {
	var im = imag(c)
	if im < 0 {
		return -im
	}
	return im
}

// modulus is cmplx.Abs under a name matching the geometry literature used
// throughout the isometry packages.
func modulus(c complex128) float64 { return cmplx.Abs(c) }
