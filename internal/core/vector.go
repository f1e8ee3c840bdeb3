// Package core provides fundamental types and utilities shared by the engine,
// the tick driver and the tooling around them. It has no external
// dependencies to keep simulation logic pure and testable.
package core

import "fmt"

// Vector is an immutable 2D point or displacement.
// X increases to the right, Y increases downward (grid coordinates).
// All operations return new values and never touch their operands.
type Vector struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the coordinate-wise sum of two vectors.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns the vector with both coordinates multiplied by k.
func (v Vector) Times(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both coordinates are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}
