package domain

import "math"

// Position is a tile-grid coordinate. Generation code only ever speaks in
// tile positions; conversion to world space happens at spawn time.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the euclidean distance to another tile.
func (p Position) DistanceTo(other Position) float64 {
	return math.Sqrt(float64(p.DistanceSquaredTo(other)))
}

// DistanceSquaredTo is DistanceTo without the root, for comparisons.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Shift returns a new position offset by (dx, dy).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Add returns the component-wise sum.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Vec2 is a world-space point or extent used by the renderer and physics.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// ToVec2 lifts a tile position into float space without scaling.
func (p Position) ToVec2() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}
