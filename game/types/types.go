package types

import "fmt"

// Game constants
const (
	DefaultGridSide      = 16  // Cells per row and per column
	DefaultTickThreshold = 0.5 // Seconds between movement steps
)

// Direction is one of the four headings the snake can face.
//
// Left and Right are the two horizontal opposites: Left steps toward the next
// higher index in the row, Right toward the next lower one. The renderer draws
// index 0 at the top-left corner, so Left shows up as a move to the right on
// screen.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Grid is a square toroidal board addressed by row-major linear index.
type Grid struct {
	Side int
}

// Cells returns the number of addressable cells.
func (g Grid) Cells() int {
	return g.Side * g.Side
}

// Contains reports whether index is a valid cell.
func (g Grid) Contains(index int) bool {
	return index >= 0 && index < g.Cells()
}

func (g Grid) Row(index int) int {
	return index / g.Side
}

func (g Grid) Col(index int) int {
	return index % g.Side
}

// Next returns the cell reached by one step from index toward dir.
// Vertical moves wrap across the whole grid, horizontal moves wrap inside the
// row of index.
func (g Grid) Next(index int, dir Direction) int {
	total := g.Cells()

	switch dir {
	case Down:
		next := index + g.Side
		if next >= total {
			next -= total
		}
		return next
	case Up:
		next := index - g.Side
		if next < 0 {
			next += total
		}
		return next
	case Left:
		next := index + 1
		if next%g.Side == 0 {
			return index - g.Side + 1
		}
		return next
	case Right:
		next := index - 1
		// Row membership is taken from index, not next.
		if index%g.Side == 0 || next < 0 {
			return index + g.Side - 1
		}
		return next
	default:
		return index
	}
}
