// Package game implements the walker: the playable first-person session
// that wires input actions to the viewer, drives the ray-casting engine,
// and draws its slices into a screen buffer.
package game

import (
	"fmt"

	"github.com/avierno/raywalk/internal/config"
	"github.com/avierno/raywalk/internal/core"
	"github.com/avierno/raywalk/internal/maps"
	"github.com/avierno/raywalk/internal/raycast"
)

// hudHeight is the rows reserved above the viewport: one status line and
// one separator.
const hudHeight = 2

// spawnHeading faces the viewer east on entry, along increasing x.
const spawnHeading = 0.0

// Walker is one first-person walk through a map.
type Walker struct {
	cfg config.Config
	m   *maps.Map

	engine *raycast.Engine
	rt     core.RuntimeConfig

	steps       int
	paused      bool
	showMinimap bool
	tooSmall    bool
}

// NewWalker creates a walker for the given map and configuration.
func NewWalker(cfg config.Config, m *maps.Map) *Walker {
	return &Walker{cfg: cfg, m: m}
}

// MapID returns the ID of the loaded map.
func (w *Walker) MapID() string {
	return w.m.ID
}

// Reset places the viewer at the map's spawn point and rebuilds the
// projection for the current screen size. Called once at start and again
// on terminal resize.
func (w *Walker) Reset(rt core.RuntimeConfig) error {
	w.rt = rt
	w.steps = 0
	w.paused = false

	viewportH := rt.ScreenH - hudHeight
	if rt.ScreenW < 16 || viewportH < 4 {
		w.tooSmall = true
		w.engine = nil
		return nil
	}
	w.tooSmall = false

	viewer := raycast.NewViewer(
		w.m.Spawn.X, w.m.Spawn.Y, spawnHeading,
		w.cfg.Viewer.MoveSpeed, w.cfg.Viewer.TurnSpeed,
	)
	if w.cfg.Viewer.FOV > 0 {
		viewer.FOV = w.cfg.Viewer.FOV
	}

	proj, err := raycast.NewProjection(rt.ScreenW, viewportH, viewer.FOV, w.m.Grid.CellSize())
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	engine, err := raycast.NewEngine(
		viewer, w.m.Grid, proj,
		w.cfg.World.WallColor.RGB(), w.cfg.World.FloorColor.RGB(),
	)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	w.engine = engine
	return nil
}

// Step advances the simulation by one fixed tick, applying the frame's
// input actions to the viewer. Movement scales with the tick's dt so the
// walk speed is independent of tick rate.
func (w *Walker) Step(in core.InputFrame) {
	if w.tooSmall || w.engine == nil {
		return
	}

	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if in.Has(core.ActionMinimap) {
		w.showMinimap = !w.showMinimap
	}
	if in.Has(core.ActionRestart) {
		w.restart()
	}
	if w.paused {
		return
	}

	dt := w.rt.Dt()
	v := w.engine.Viewer()
	moved := false

	if in.Has(core.ActionForward) {
		v.MoveForward(dt)
		moved = true
	}
	if in.Has(core.ActionBackward) {
		v.MoveBackward(dt)
		moved = true
	}
	if in.Has(core.ActionTurnLeft) {
		v.TurnLeft(dt)
	}
	if in.Has(core.ActionTurnRight) {
		v.TurnRight(dt)
	}

	if moved {
		w.steps++
	}
}

// restart returns the viewer to the spawn point without rebuilding the
// engine; the next frame notices the moved viewer and redraws.
func (w *Walker) restart() {
	v := w.engine.Viewer()
	v.X = w.m.Spawn.X
	v.Y = w.m.Spawn.Y
	v.Heading = spawnHeading
	w.steps = 0
}

// State returns the session statistics for HUD and persistence.
func (w *Walker) State() core.GameState {
	collisions := 0
	if w.engine != nil {
		collisions = w.engine.Collisions()
	}
	return core.GameState{
		Steps:      w.steps,
		Collisions: collisions,
		Paused:     w.paused,
	}
}

// Render draws the current view into the screen buffer: HUD on top, then
// the ceiling/wall/floor viewport, then overlays.
func (w *Walker) Render(dst *core.Screen) {
	dst.Clear()
	w.renderHUD(dst)

	if w.tooSmall || w.engine == nil {
		w.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	slices, _ := w.engine.Frame()
	w.renderViewport(dst, slices)

	if w.showMinimap {
		w.renderMinimap(dst)
	}
	if w.paused {
		w.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (w *Walker) renderHUD(dst *core.Screen) {
	var hud string
	if w.engine != nil {
		v := w.engine.Viewer()
		hud = fmt.Sprintf(" %s | pos (%.0f, %.0f)  heading %.0f°  steps %d  bumps %d",
			w.m.ID, v.X, v.Y, v.Heading, w.steps, w.engine.Collisions())
	} else {
		hud = fmt.Sprintf(" %s", w.m.ID)
	}
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderViewport paints every column: blank ceiling above the slice, the
// shaded wall slice itself, and the floor color below the horizon.
func (w *Walker) renderViewport(dst *core.Screen, slices []raycast.Slice) {
	proj := w.engine.Projection()
	floor := w.engine.FloorColor()
	center := proj.CenterRow()
	height := proj.Height()

	for _, sl := range slices {
		top := core.Clamp(sl.Top, 0, height)
		bottom := core.Clamp(sl.Bottom, 0, height-1)

		// Floor first, wall over it: a slice taller than the lower half
		// covers its floor run entirely.
		for y := center; y < height; y++ {
			dst.SetCell(sl.Column, hudHeight+y, core.Cell{Rune: '█', FG: floor})
		}
		for y := top; y <= bottom; y++ {
			dst.SetCell(sl.Column, hudHeight+y, core.Cell{Rune: '█', FG: sl.Color})
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (w *Walker) renderOverlay(dst *core.Screen, title, subtitle string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, title, core.ColorWhite)
	dst.DrawTextCentered(y+1, subtitle, core.ColorGray)
}
