package raycast

import (
	"fmt"
	"math"

	"github.com/avierno/raywalk/internal/core"
)

// brightnessK tunes distance shading. At raw distance d the intensity
// factor is K/d, so walls closer than K world units render at full color.
const brightnessK = 200.0

// Projection holds the constants derived from viewport geometry and field
// of view. Computed once at construction, immutable afterwards.
type Projection struct {
	viewportW       int
	viewportH       int
	centerRow       int     // viewportH / 2: the fixed horizon
	distanceToPlane float64 // (viewportW/2) / tan(FOV/2)
	angleIncrement  float64 // FOV / viewportW, degrees between adjacent rays
	projConst       float64 // cellSize * distanceToPlane
	cellFactor      float64 // cellSize >> log2(cellSize), kept for the shading formula
}

// NewProjection derives the projection constants for a viewport of the
// given size looking through fovDeg degrees at a grid with the given cell
// size. Non-positive dimensions or field of view wrap ErrConfiguration.
func NewProjection(viewportW, viewportH int, fovDeg float64, cellSize int) (*Projection, error) {
	if viewportW <= 0 || viewportH <= 0 {
		return nil, fmt.Errorf("%w: viewport %dx%d must be positive", ErrConfiguration, viewportW, viewportH)
	}
	if fovDeg <= 0 || fovDeg >= 180 {
		return nil, fmt.Errorf("%w: field of view %v degrees out of range (0, 180)", ErrConfiguration, fovDeg)
	}
	if cellSize <= 0 || cellSize&(cellSize-1) != 0 {
		return nil, fmt.Errorf("%w: cell size %d is not a power of two", ErrConfiguration, cellSize)
	}

	distance := float64(viewportW/2) / math.Tan(radians(fovDeg/2))
	shift := 0
	for 1<<shift < cellSize {
		shift++
	}

	return &Projection{
		viewportW:       viewportW,
		viewportH:       viewportH,
		centerRow:       viewportH / 2,
		distanceToPlane: distance,
		angleIncrement:  fovDeg / float64(viewportW),
		projConst:       float64(cellSize) * distance,
		cellFactor:      float64(cellSize >> shift),
	}, nil
}

// Width returns the viewport width in columns, one ray per column.
func (p *Projection) Width() int {
	return p.viewportW
}

// Height returns the viewport height in rows.
func (p *Projection) Height() int {
	return p.viewportH
}

// CenterRow returns the horizon row. Slices are symmetric about it, which
// keeps the horizon fixed regardless of wall distance.
func (p *Projection) CenterRow() int {
	return p.centerRow
}

// Slice is one renderable vertical wall segment.
type Slice struct {
	Column int
	Height int // slice height in rows, floored
	Top    int // CenterRow - Height/2
	Bottom int // CenterRow + Height/2
	Color  core.RGB
}

// Project converts one ray hit into a wall slice. Height is inversely
// proportional to the corrected distance; the color is the base wall color
// attenuated by raw distance and clamped channel-wise to the base.
func (p *Projection) Project(hit Hit, wall core.RGB) Slice {
	height := int(p.projConst / hit.PerpDistance)

	intensity := 1 / hit.Distance * brightnessK * p.cellFactor
	return Slice{
		Column: hit.Column,
		Height: height,
		Top:    p.centerRow - height/2,
		Bottom: p.centerRow + height/2,
		Color:  wall.Scale(intensity),
	}
}

// ProjectAll projects every hit of a frame, ordered by column.
func (p *Projection) ProjectAll(hits []Hit, wall core.RGB) []Slice {
	slices := make([]Slice, len(hits))
	for i, h := range hits {
		slices[i] = p.Project(h, wall)
	}
	return slices
}
