package raycast

import "testing"

func TestCheckCollisionInOpenCell(t *testing.T) {
	g, err := NewGridMap(cellsFromStrings([]string{
		"###",
		"#.#",
		"###",
	}), 128)
	if err != nil {
		t.Fatalf("NewGridMap() failed: %v", err)
	}

	// Positions strictly inside the open cell never collide and stay put.
	positions := [][2]float64{
		{192, 192},
		{128.5, 128.5},
		{255.9, 255.9},
		{130, 250},
	}
	for _, pos := range positions {
		v := NewViewer(pos[0], pos[1], 0, 100, 100)
		last := Position{X: 1, Y: 1}

		if CheckCollision(v, g, last) {
			t.Errorf("position (%v, %v) reported a collision in an open cell", pos[0], pos[1])
		}
		if v.X != pos[0] || v.Y != pos[1] {
			t.Errorf("no-collision check moved the viewer to (%v, %v)", v.X, v.Y)
		}
	}
}

func TestCheckCollisionRestoresLastGood(t *testing.T) {
	g, err := NewGridMap(cellsFromStrings([]string{
		"###",
		"#.#",
		"###",
	}), 128)
	if err != nil {
		t.Fatalf("NewGridMap() failed: %v", err)
	}

	// Viewer walked into the east wall; it must come back to exactly the
	// last known good position.
	v := NewViewer(260, 192, 0, 100, 100)
	last := Position{X: 250.25, Y: 191.75}

	if !CheckCollision(v, g, last) {
		t.Fatal("viewer inside a wall cell should collide")
	}
	if v.X != last.X || v.Y != last.Y {
		t.Errorf("viewer restored to (%v, %v), expected exactly (%v, %v)", v.X, v.Y, last.X, last.Y)
	}
}
