package raycast

import "math"

// minPerpDistance floors the corrected distance so the projector never
// divides by zero when a ray originates on a wall boundary.
const minPerpDistance = 1e-6

// marchDivisor sets the ray step length as a fraction of the cell size.
// Smaller steps cost more per column; 1/32 of a cell keeps hit error well
// under one terminal character at typical viewport sizes.
const marchDivisor = 32

// Hit is the result of casting one ray: the wall it struck (if any), the
// raw Euclidean distance used for shading, and the fish-eye-corrected
// perpendicular distance used for projection.
type Hit struct {
	Column       int     // viewport column this ray belongs to
	Distance     float64 // raw distance from viewer to the hit point
	PerpDistance float64 // Distance * cos(angle relative to heading)
	X, Y         float64 // world coordinates of the hit point
	Wall         bool    // false when the ray left the grid without a hit
}

// CastRays casts one ray per viewport column and returns the hits ordered
// by column index, 0..width-1. It is a pure function of its inputs: fixed
// viewer, grid, and width always produce identical output.
//
// Column i's ray leaves at heading - FOV/2 + i*(FOV/width) degrees and
// marches in fixed steps along (cos, -sin) until it resolves to a wall cell
// or exceeds the grid diagonal. Rays that leave the grid report a sentinel
// maximum-distance hit rather than an error: open maps are legal.
func CastRays(v *Viewer, g *GridMap, width int) []Hit {
	hits := make([]Hit, width)

	angleStep := v.FOV / float64(width)
	startAngle := v.Heading - v.FOV/2
	step := float64(g.CellSize()) / marchDivisor
	maxDist := g.Diagonal()

	for i := 0; i < width; i++ {
		rayAngle := startAngle + float64(i)*angleStep
		hits[i] = castRay(v, g, i, rayAngle, step, maxDist)
	}
	return hits
}

func castRay(v *Viewer, g *GridMap, column int, rayAngle, step, maxDist float64) Hit {
	rad := radians(rayAngle)
	dirX := math.Cos(rad)
	dirY := -math.Sin(rad)

	relative := radians(rayAngle - v.Heading)
	correction := math.Cos(relative)

	for t := step; t <= maxDist; t += step {
		x := v.X + dirX*t
		y := v.Y + dirY*t
		if g.WallAt(x, y) {
			return Hit{
				Column:       column,
				Distance:     t,
				PerpDistance: math.Max(t*correction, minPerpDistance),
				X:            x,
				Y:            y,
				Wall:         true,
			}
		}
	}

	// No wall within the traversal bound: report the bound itself so the
	// projector renders a sliver shaded to black.
	return Hit{
		Column:       column,
		Distance:     maxDist,
		PerpDistance: math.Max(maxDist*correction, minPerpDistance),
		X:            v.X + dirX*maxDist,
		Y:            v.Y + dirY*maxDist,
		Wall:         false,
	}
}
