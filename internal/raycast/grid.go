// Package raycast implements the pseudo-3D rendering core: a grid map of
// wall cells, a first-person viewer, per-column ray casting with fish-eye
// correction, slice projection with distance shading, and the frame
// orchestrator that ties them together. The package is pure: nothing here
// touches the terminal, the clock, or any I/O.
package raycast

import (
	"fmt"
	"math"
	"math/bits"
)

// Cell is the state of one grid square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
)

// GridMap is a rectangular grid of wall and empty cells. The cell size is a
// power of two so world-to-cell conversion is a single right shift. A GridMap
// is immutable after construction and safe to share across frames.
type GridMap struct {
	cells     [][]Cell
	cellSize  int
	cellShift int // log2(cellSize)
	rows      int
	cols      int
}

// NewGridMap validates and builds a grid map. The cells slice must be
// rectangular with at least one row and one column, and cellSize must be a
// positive power of two. Violations wrap ErrConfiguration.
func NewGridMap(cells [][]Cell, cellSize int) (*GridMap, error) {
	if cellSize <= 0 || cellSize&(cellSize-1) != 0 {
		return nil, fmt.Errorf("%w: cell size %d is not a power of two", ErrConfiguration, cellSize)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrConfiguration)
	}

	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrConfiguration, i, len(row), cols)
		}
	}

	// Defensive copy; callers must not be able to mutate a live grid.
	copied := make([][]Cell, len(cells))
	for i, row := range cells {
		copied[i] = make([]Cell, cols)
		copy(copied[i], row)
	}

	return &GridMap{
		cells:     copied,
		cellSize:  cellSize,
		cellShift: bits.TrailingZeros(uint(cellSize)),
		rows:      len(cells),
		cols:      cols,
	}, nil
}

// CellSize returns the side length of one cell in world units.
func (g *GridMap) CellSize() int {
	return g.cellSize
}

// Rows returns the number of grid rows.
func (g *GridMap) Rows() int {
	return g.rows
}

// Cols returns the number of grid columns.
func (g *GridMap) Cols() int {
	return g.cols
}

// ToCell converts a continuous world coordinate to its cell index.
// The power-of-two cell size makes this a right shift.
func (g *GridMap) ToCell(world float64) int {
	return int(world) >> g.cellShift
}

// ToWorld returns the world coordinate of the center of the given cell.
func ToWorld(cell, cellSize int) float64 {
	return float64(cell*cellSize + cellSize>>1)
}

// At returns the cell at (row, col). Coordinates outside the grid resolve
// to CellEmpty: rays that leave the map keep marching until the traversal
// bound, never panic.
func (g *GridMap) At(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return CellEmpty
	}
	return g.cells[row][col]
}

// InBounds reports whether the cell coordinates lie inside the grid.
func (g *GridMap) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// WallAt reports whether the world position (x, y) falls in a wall cell.
func (g *GridMap) WallAt(x, y float64) bool {
	return g.At(g.ToCell(y), g.ToCell(x)) == CellWall
}

// Diagonal returns the length of the map's diagonal in world units.
// It bounds ray traversal: no visible wall can be farther away.
func (g *GridMap) Diagonal() float64 {
	w := float64(g.cols * g.cellSize)
	h := float64(g.rows * g.cellSize)
	return math.Sqrt(w*w + h*h)
}
