// Package vec provides the 2D integer point/size used for all layout math.
package vec

// Vec2 is a position or a size on the character grid.
type Vec2 struct {
	X int
	Y int
}

// New creates a Vec2.
func New(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns (0, 0).
func Zero() Vec2 {
	return Vec2{}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Div divides both components by n (integer division).
func (v Vec2) Div(n int) Vec2 {
	return Vec2{X: v.X / n, Y: v.Y / n}
}

// Min returns the componentwise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// FloorAt raises each component to at least the matching component of floor.
func (v Vec2) FloorAt(floor Vec2) Vec2 {
	return v.Max(floor)
}

// KeepX returns (X, 0).
func (v Vec2) KeepX() Vec2 {
	return Vec2{X: v.X}
}

// KeepY returns (0, Y).
func (v Vec2) KeepY() Vec2 {
	return Vec2{Y: v.Y}
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Vec2) Vec2 {
	return a.Min(b)
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Vec2) Vec2 {
	return a.Max(b)
}
