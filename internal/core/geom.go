package core

import "math"

// Box is an axis-aligned bounding box used for collision detection.
type Box struct {
	Pos  Vector // Top-left corner
	Size Vector // Width and height
}

// NewBox creates a box at pos with the given size.
func NewBox(pos, size Vector) Box {
	return Box{Pos: pos, Size: size}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Pos.X
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Pos.Y
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Intersects returns true if this box overlaps with another.
// Boxes that only share an edge do not overlap.
func (b Box) Intersects(other Box) bool {
	return b.Right() > other.Left() &&
		b.Left() < other.Right() &&
		b.Top() < other.Bottom() &&
		b.Bottom() > other.Top()
}

// CellSpan returns the half-open range of integer grid cells covered by the box:
// columns [left, right) and rows [top, bottom).
func (b Box) CellSpan() (left, top, right, bottom int) {
	left = int(math.Floor(b.Left()))
	top = int(math.Floor(b.Top()))
	right = int(math.Ceil(b.Right()))
	bottom = int(math.Ceil(b.Bottom()))
	return left, top, right, bottom
}
