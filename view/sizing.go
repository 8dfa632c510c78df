package view

import "github.com/drake/runeview/vec"

// DimensionKind is the kind of constraint on one axis.
type DimensionKind int

const (
	// KindUnknown: no constraint, report the ideal size.
	KindUnknown DimensionKind = iota
	// KindAtMost: soft upper bound, exceeded only when content forces it.
	KindAtMost
	// KindFixed: the answer must be exactly N.
	KindFixed
)

// DimensionRequest constrains one axis of a size query.
type DimensionRequest struct {
	Kind DimensionKind
	N    int
}

// Unknown is the unconstrained request.
var Unknown = DimensionRequest{}

// AtMost returns a soft upper bound.
func AtMost(n int) DimensionRequest {
	return DimensionRequest{Kind: KindAtMost, N: n}
}

// Fixed returns an exact constraint.
func Fixed(n int) DimensionRequest {
	return DimensionRequest{Kind: KindFixed, N: n}
}

// Reduced removes n from the bound, flooring at zero.
func (d DimensionRequest) Reduced(n int) DimensionRequest {
	if d.Kind == KindUnknown {
		return d
	}
	return DimensionRequest{Kind: d.Kind, N: max(0, d.N-n)}
}

// Clamp applies the request to a proposed extent: Fixed replaces it,
// the others leave it untouched.
func (d DimensionRequest) Clamp(v int) int {
	if d.Kind == KindFixed {
		return d.N
	}
	return v
}

// SizeRequest pairs a width and a height request.
type SizeRequest struct {
	W DimensionRequest
	H DimensionRequest
}

// AtMostSize builds a request bounded softly by size on both axes.
func AtMostSize(size vec.Vec2) SizeRequest {
	return SizeRequest{W: AtMost(size.X), H: AtMost(size.Y)}
}

// FixedSize builds a request fixing both axes.
func FixedSize(size vec.Vec2) SizeRequest {
	return SizeRequest{W: Fixed(size.X), H: Fixed(size.Y)}
}

// Reduced removes by from both bounds (e.g. for borders).
func (r SizeRequest) Reduced(by vec.Vec2) SizeRequest {
	return SizeRequest{W: r.W.Reduced(by.X), H: r.H.Reduced(by.Y)}
}

// Clamp forces Fixed axes of size to their requested value.
func (r SizeRequest) Clamp(size vec.Vec2) vec.Vec2 {
	return vec.New(r.W.Clamp(size.X), r.H.Clamp(size.Y))
}
