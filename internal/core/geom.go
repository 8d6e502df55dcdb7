// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Coord is an immutable 2D integer coordinate.
// X is the terminal row and Y the terminal column.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the componentwise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Equal returns true if both components match.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// directionDeltas maps each direction to its unit step.
var directionDeltas = [...]Coord{
	DirRight: {X: 0, Y: 1},
	DirDown:  {X: 1, Y: 0},
	DirLeft:  {X: 0, Y: -1},
	DirUp:    {X: -1, Y: 0},
}

// Delta returns the unit coordinate step for the direction.
// Unknown directions yield the zero step.
func (d Direction) Delta() Coord {
	if d < 0 || int(d) >= len(directionDeltas) {
		return Coord{}
	}
	return directionDeltas[d]
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
