package raycast

import (
	"math"
	"testing"
)

// borderedGrid returns an n x n grid whose border cells are walls.
func borderedGrid(t *testing.T, n, cellSize int) *GridMap {
	t.Helper()
	cells := make([][]Cell, n)
	for i := range cells {
		cells[i] = make([]Cell, n)
		for j := range cells[i] {
			if i == 0 || j == 0 || i == n-1 || j == n-1 {
				cells[i][j] = CellWall
			}
		}
	}
	g, err := NewGridMap(cells, cellSize)
	if err != nil {
		t.Fatalf("NewGridMap() failed: %v", err)
	}
	return g
}

func TestCastRaysOneHitPerColumn(t *testing.T) {
	g := borderedGrid(t, 5, 128)
	v := NewViewer(ToWorld(2, 128), ToWorld(2, 128), 0, 100, 100)

	for _, width := range []int{1, 4, 80, 320} {
		hits := CastRays(v, g, width)
		if len(hits) != width {
			t.Fatalf("CastRays(width=%d) returned %d hits", width, len(hits))
		}
		for i, h := range hits {
			if h.Column != i {
				t.Errorf("hit %d has column %d", i, h.Column)
			}
		}
	}
}

func TestCastRaysOneHitPerColumnOnEmptyMap(t *testing.T) {
	// Map contents never change the hit count, only the distances.
	cells := make([][]Cell, 4)
	for i := range cells {
		cells[i] = make([]Cell, 4)
	}
	g, err := NewGridMap(cells, 64)
	if err != nil {
		t.Fatalf("NewGridMap() failed: %v", err)
	}
	v := NewViewer(ToWorld(1, 64), ToWorld(1, 64), 45, 100, 100)

	hits := CastRays(v, g, 16)
	if len(hits) != 16 {
		t.Fatalf("CastRays() returned %d hits, expected 16", len(hits))
	}
	for _, h := range hits {
		if h.Wall {
			t.Errorf("column %d reported a wall hit on an all-empty map", h.Column)
		}
		if h.Distance != g.Diagonal() {
			t.Errorf("column %d no-hit distance = %v, expected the diagonal %v", h.Column, h.Distance, g.Diagonal())
		}
		if h.PerpDistance <= 0 {
			t.Errorf("column %d perpendicular distance %v not positive", h.Column, h.PerpDistance)
		}
	}
}

func TestCenterColumnHasNoFisheyeCorrection(t *testing.T) {
	// The ray at relative angle zero satisfies cos(0) = 1, so the
	// corrected distance equals the raw distance.
	g := borderedGrid(t, 5, 128)
	v := NewViewer(ToWorld(2, 128), ToWorld(2, 128), 0, 100, 100)

	width := 8
	hits := CastRays(v, g, width)
	center := hits[width/2]

	if math.Abs(center.PerpDistance-center.Distance) > 1e-9 {
		t.Errorf("center column: perpendicular %v != raw %v", center.PerpDistance, center.Distance)
	}
}

func TestEdgeColumnsAreCorrected(t *testing.T) {
	g := borderedGrid(t, 5, 128)
	v := NewViewer(ToWorld(2, 128), ToWorld(2, 128), 0, 100, 100)

	hits := CastRays(v, g, 8)
	edge := hits[0] // relative angle -FOV/2

	if edge.PerpDistance >= edge.Distance {
		t.Errorf("edge column: perpendicular %v should be less than raw %v", edge.PerpDistance, edge.Distance)
	}
	want := edge.Distance * math.Cos(radians(-v.FOV/2))
	if math.Abs(edge.PerpDistance-want) > 1e-9 {
		t.Errorf("edge column: perpendicular %v, expected %v", edge.PerpDistance, want)
	}
}

func TestCastRaysDeterminism(t *testing.T) {
	g := borderedGrid(t, 7, 64)
	v := NewViewer(ToWorld(3, 64), ToWorld(3, 64), 200, 100, 100)

	a := CastRays(v, g, 120)
	b := CastRays(v, g, 120)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("column %d differs between identical casts: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestBorderedThreeByThree(t *testing.T) {
	// 3x3 grid, walls on the border, viewer dead center at world
	// (192, 192) facing east with a 60 degree FOV and 4 columns.
	g := borderedGrid(t, 3, 128)
	v := NewViewer(192, 192, 0, 100, 100)

	hits := CastRays(v, g, 4)
	if len(hits) != 4 {
		t.Fatalf("CastRays() returned %d hits, expected 4", len(hits))
	}

	for _, h := range hits {
		if !h.Wall {
			t.Errorf("column %d missed the bordering walls", h.Column)
		}
		if h.PerpDistance <= 0 || h.PerpDistance > g.Diagonal() {
			t.Errorf("column %d perpendicular distance %v outside (0, diagonal]", h.Column, h.PerpDistance)
		}
		if h.Distance <= 0 || h.Distance > g.Diagonal() {
			t.Errorf("column %d raw distance %v outside (0, diagonal]", h.Column, h.Distance)
		}
	}

	// The wall straight ahead is nearest: rays closer to the heading
	// (columns 2 is exactly on it with width 4) must be shorter than the
	// FOV extremes.
	if hits[2].Distance > hits[0].Distance {
		t.Errorf("ray on the heading (%v) should be shorter than the FOV edge (%v)",
			hits[2].Distance, hits[0].Distance)
	}
	if hits[2].Distance > hits[3].Distance {
		t.Errorf("ray on the heading (%v) should be shorter than the FOV edge (%v)",
			hits[2].Distance, hits[3].Distance)
	}
}

func TestRayMarchesToTheNearestWall(t *testing.T) {
	// Corridor: walls to the east at increasing distances depending on row.
	g, err := NewGridMap(cellsFromStrings([]string{
		"#####",
		"#...#",
		"#####",
	}), 128)
	if err != nil {
		t.Fatalf("NewGridMap() failed: %v", err)
	}

	// Facing east down the corridor from cell (1,1): the far wall is at
	// x=512, 320 units ahead. With width 2 the second column rides the
	// heading exactly; the step size quantizes the hit point, so allow
	// one step of slack.
	v := NewViewer(ToWorld(1, 128), ToWorld(1, 128), 0, 100, 100)
	hits := CastRays(v, g, 2)

	ahead := hits[1]
	if !ahead.Wall {
		t.Fatal("heading ray missed the corridor's far wall")
	}
	step := 128.0 / marchDivisor
	if ahead.Distance < 320 || ahead.Distance > 320+step {
		t.Errorf("heading ray distance %v, expected within one step past 320", ahead.Distance)
	}

	// The -30 degree column dips into the corridor's side wall well
	// before the far wall.
	side := hits[0]
	if !side.Wall {
		t.Fatal("edge ray missed the corridor's side wall")
	}
	if side.Distance >= ahead.Distance {
		t.Errorf("edge ray (%v) should strike the side wall before the far wall (%v)",
			side.Distance, ahead.Distance)
	}
}
