// SPDX-License-Identifier: MIT

// Package isometry: the Class enum.
package isometry

// Class is the geometric type of an isometry, derived from the trace and
// determinant of its upper half-plane representation.
type Class int

const (
	// Identity fixes the entire plane.
	Identity Class = iota
	// Elliptic fixes one interior point and no boundary point.
	Elliptic
	// Parabolic fixes exactly one boundary point.
	Parabolic
	// Hyperbolic translates along an axis between two boundary points.
	Hyperbolic
	// Reflection is orientation-reversing with a pointwise-fixed geodesic.
	Reflection
	// OrientationReversingHyperbolic is a glide reflection: axis dynamics
	// combined with a flip across the axis.
	OrientationReversingHyperbolic
)

// String returns the lowercase prose tag of the class.
func (c Class) String() string {
	switch c {
	case Identity:
		return "identity"
	case Elliptic:
		return "elliptic"
	case Parabolic:
		return "parabolic"
	case Hyperbolic:
		return "hyperbolic"
	case Reflection:
		return "reflection"
	case OrientationReversingHyperbolic:
		return "orientation-reversing hyperbolic"
	default:
		return "class(invalid)"
	}
}

// IsHyperbolic reports whether the class carries source/sink boundary
// dynamics (a translation axis).
func (c Class) IsHyperbolic() bool {
	return c == Hyperbolic || c == OrientationReversingHyperbolic
}
