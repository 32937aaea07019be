package raycast

import (
	"fmt"

	"github.com/avierno/raywalk/internal/core"
)

// frameState is the orchestrator's two-state machine. The engine is dirty
// whenever the viewer differs from the snapshot captured at the end of the
// last completed frame; an idle engine returns the cached slices untouched.
type frameState uint8

const (
	stateIdle frameState = iota
	stateDirty
)

// viewerSnapshot captures the parts of the viewer that invalidate a frame.
type viewerSnapshot struct {
	x, y, heading float64
}

// Engine orchestrates one render session: it owns the viewer and grid,
// runs the collision check before every cast, and recomputes slices only
// when the viewer has actually moved or turned. Single-threaded by design;
// the caller drives it once per tick.
type Engine struct {
	viewer *Viewer
	grid   *GridMap
	proj   *Projection
	wall   core.RGB
	floor  core.RGB

	lastGood   Position
	captured   viewerSnapshot
	state      frameState
	slices     []Slice
	collisions int
}

// NewEngine wires a viewer, grid, and projection into a render session.
// The viewer must start on a traversable cell: an engine whose spawn point
// is inside a wall has no last-known-good position to fall back to.
func NewEngine(v *Viewer, g *GridMap, p *Projection, wall, floor core.RGB) (*Engine, error) {
	if g.WallAt(v.X, v.Y) {
		return nil, fmt.Errorf("%w: viewer spawn (%v, %v) is inside a wall cell", ErrConfiguration, v.X, v.Y)
	}
	return &Engine{
		viewer:   v,
		grid:     g,
		proj:     p,
		wall:     wall,
		floor:    floor,
		lastGood: Position{X: v.X, Y: v.Y},
		state:    stateDirty, // first frame always renders
	}, nil
}

// Viewer returns the engine's viewer for the input boundary to mutate
// between frames.
func (e *Engine) Viewer() *Viewer {
	return e.viewer
}

// Grid returns the read-only grid map.
func (e *Engine) Grid() *GridMap {
	return e.grid
}

// Projection returns the cached projection parameters.
func (e *Engine) Projection() *Projection {
	return e.proj
}

// FloorColor returns the base color the drawing boundary uses below the
// horizon.
func (e *Engine) FloorColor() core.RGB {
	return e.floor
}

// Collisions returns how many frames ended with the viewer pushed back to
// its last good position.
func (e *Engine) Collisions() int {
	return e.collisions
}

// Frame produces the slice sequence for the current viewer state. It
// returns redrawn=false with the cached slices when nothing changed since
// the last frame; otherwise it runs collision, casts one ray per column,
// projects the hits, captures the new state, and returns redrawn=true.
func (e *Engine) Frame() (slices []Slice, redrawn bool) {
	now := viewerSnapshot{x: e.viewer.X, y: e.viewer.Y, heading: e.viewer.Heading}
	if e.state == stateIdle && now == e.captured {
		return e.slices, false
	}
	e.state = stateDirty

	if CheckCollision(e.viewer, e.grid, e.lastGood) {
		e.collisions++
	} else {
		e.lastGood = Position{X: e.viewer.X, Y: e.viewer.Y}
	}

	hits := CastRays(e.viewer, e.grid, e.proj.Width())
	e.slices = e.proj.ProjectAll(hits, e.wall)

	e.captured = viewerSnapshot{x: e.viewer.X, y: e.viewer.Y, heading: e.viewer.Heading}
	e.state = stateIdle
	return e.slices, true
}
