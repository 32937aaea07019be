package raycast

// Position is a world-coordinate pair, used for the last-known-good
// position the collision checker restores.
type Position struct {
	X, Y float64
}

// CheckCollision tests whether the viewer's current cell is a wall. If so
// it overwrites the viewer's position with last and reports true; the
// caller keeps last unchanged. Otherwise it reports false and the caller
// should advance last to the viewer's current position.
//
// Run once per frame before casting, this guarantees the caster always
// starts from a traversable cell.
func CheckCollision(v *Viewer, g *GridMap, last Position) bool {
	if g.WallAt(v.X, v.Y) {
		v.X = last.X
		v.Y = last.Y
		return true
	}
	return false
}
