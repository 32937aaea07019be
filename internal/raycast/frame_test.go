package raycast

import (
	"errors"
	"testing"

	"github.com/avierno/raywalk/internal/core"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	g := borderedGrid(t, 5, 128)
	v := NewViewer(ToWorld(2, 128), ToWorld(2, 128), 0, 200, 120)
	p, err := NewProjection(40, 20, v.FOV, g.CellSize())
	if err != nil {
		t.Fatalf("NewProjection() failed: %v", err)
	}
	e, err := NewEngine(v, g, p, core.RGB{R: 160, G: 82, B: 45}, core.RGB{R: 34, G: 34, B: 34})
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

func TestEngineRejectsSpawnInsideWall(t *testing.T) {
	g := borderedGrid(t, 3, 128)
	v := NewViewer(10, 10, 0, 100, 100) // top-left wall cell
	p, err := NewProjection(40, 20, v.FOV, g.CellSize())
	if err != nil {
		t.Fatalf("NewProjection() failed: %v", err)
	}

	if _, err := NewEngine(v, g, p, core.ColorWhite, core.ColorBlack); !errors.Is(err, ErrConfiguration) {
		t.Errorf("NewEngine() error = %v, expected ErrConfiguration", err)
	}
}

func TestEngineFirstFrameRenders(t *testing.T) {
	e := newTestEngine(t)

	slices, redrawn := e.Frame()
	if !redrawn {
		t.Error("first frame should always render")
	}
	if len(slices) != e.Projection().Width() {
		t.Errorf("frame produced %d slices, expected %d", len(slices), e.Projection().Width())
	}
}

func TestEngineSkipsUnchangedFrames(t *testing.T) {
	e := newTestEngine(t)

	first, _ := e.Frame()
	second, redrawn := e.Frame()

	if redrawn {
		t.Error("unchanged viewer state should not trigger a redraw")
	}
	if len(second) != len(first) {
		t.Fatalf("cached frame has %d slices, expected %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cached slice %d differs from the rendered one", i)
		}
	}
}

func TestEngineRedrawsAfterMovement(t *testing.T) {
	e := newTestEngine(t)
	e.Frame()

	e.Viewer().MoveForward(0.1)
	if _, redrawn := e.Frame(); !redrawn {
		t.Error("movement should mark the frame dirty")
	}

	e.Frame() // settle
	e.Viewer().TurnLeft(0.1)
	if _, redrawn := e.Frame(); !redrawn {
		t.Error("rotation should mark the frame dirty")
	}
}

func TestEngineCollisionRestoresPosition(t *testing.T) {
	e := newTestEngine(t)
	e.Frame()

	v := e.Viewer()
	goodX, goodY := v.X, v.Y

	// Teleport into the east wall; the next frame pushes back.
	v.X = ToWorld(2, 128) + 150
	if _, redrawn := e.Frame(); !redrawn {
		t.Error("collision frame should still render")
	}

	if v.X != goodX || v.Y != goodY {
		t.Errorf("viewer at (%v, %v), expected restore to (%v, %v)", v.X, v.Y, goodX, goodY)
	}
	if e.Collisions() != 1 {
		t.Errorf("Collisions() = %d, expected 1", e.Collisions())
	}
}

func TestEngineTracksLastGoodAcrossFrames(t *testing.T) {
	e := newTestEngine(t)
	e.Frame()

	v := e.Viewer()

	// A legal move becomes the new last-known-good position.
	v.MoveForward(0.05)
	e.Frame()
	goodX, goodY := v.X, v.Y

	// Now crash into a wall: the restore target is the updated position,
	// not the spawn point.
	v.X += 500
	e.Frame()

	if v.X != goodX || v.Y != goodY {
		t.Errorf("viewer at (%v, %v), expected the post-move position (%v, %v)", v.X, v.Y, goodX, goodY)
	}
}

func TestEngineFrameDeterminism(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)

	script := func(e *Engine) []Slice {
		e.Frame()
		e.Viewer().MoveForward(0.1)
		e.Viewer().TurnRight(0.2)
		s, _ := e.Frame()
		return s
	}

	sa := script(a)
	sb := script(b)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("slice %d differs between identical engines", i)
		}
	}
}
