package game

import (
	"github.com/avierno/raywalk/internal/core"
	"github.com/avierno/raywalk/internal/raycast"
)

// minimap colors; the viewer marker is drawn in the wall base color so it
// stands out against the gray grid.
var (
	minimapWall  = core.RGB{R: 200, G: 200, B: 200}
	minimapFloor = core.RGB{R: 90, G: 90, B: 90}
)

// renderMinimap overlays an overhead view of the grid in the top-right
// corner: one character per cell, with the viewer's cell marked by an
// arrow showing its heading.
func (w *Walker) renderMinimap(dst *core.Screen) {
	grid := w.engine.Grid()
	v := w.engine.Viewer()

	offsetX := dst.Width() - grid.Cols() - 1
	if offsetX < 0 {
		offsetX = 0
	}
	offsetY := hudHeight

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell := core.Cell{Rune: '·', FG: minimapFloor}
			if grid.At(row, col) == raycast.CellWall {
				cell = core.Cell{Rune: '█', FG: minimapWall}
			}
			dst.SetCell(offsetX+col, offsetY+row, cell)
		}
	}

	viewerRow := grid.ToCell(v.Y)
	viewerCol := grid.ToCell(v.X)
	dst.SetCell(offsetX+viewerCol, offsetY+viewerRow, core.Cell{
		Rune: headingArrow(v.Heading),
		FG:   w.cfg.World.WallColor.RGB(),
	})
}

// headingArrow picks the arrow nearest the heading. North is up the
// screen because world y grows downward.
func headingArrow(heading float64) rune {
	switch {
	case heading >= 45 && heading < 135:
		return '↑'
	case heading >= 135 && heading < 225:
		return '←'
	case heading >= 225 && heading < 315:
		return '↓'
	default:
		return '→'
	}
}
