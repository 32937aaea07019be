package raycast

import (
	"math"
	"testing"
)

func TestHeadingNormalization(t *testing.T) {
	tests := []struct {
		name     string
		heading  float64
		expected float64
	}{
		{"in range", 90, 90},
		{"zero", 0, 0},
		{"full turn", 360, 0},
		{"over full turn", 450, 90},
		{"negative", -90, 270},
		{"large negative", -720, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewer(0, 0, tc.heading, 100, 100)
			if math.Abs(v.Heading-tc.expected) > 1e-9 {
				t.Errorf("heading %v normalized to %v, expected %v", tc.heading, v.Heading, tc.expected)
			}
		})
	}
}

func TestHeadingStaysNormalizedAfterTurns(t *testing.T) {
	v := NewViewer(0, 0, 350, 100, 100)

	for i := 0; i < 100; i++ {
		v.TurnLeft(0.5) // 50 degrees per call
		if v.Heading < 0 || v.Heading >= 360 {
			t.Fatalf("heading %v left [0, 360) after TurnLeft", v.Heading)
		}
	}
	for i := 0; i < 100; i++ {
		v.TurnRight(0.7)
		if v.Heading < 0 || v.Heading >= 360 {
			t.Fatalf("heading %v left [0, 360) after TurnRight", v.Heading)
		}
	}
}

func TestMoveForwardDirections(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		dx, dy  float64 // expected deltas for speed 100, dt 1
	}{
		{"east", 0, 100, 0},
		{"north is up the screen", 90, 0, -100},
		{"west", 180, -100, 0},
		{"south is down the screen", 270, 0, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewer(500, 500, tc.heading, 100, 100)
			v.MoveForward(1.0)
			if math.Abs(v.X-500-tc.dx) > 1e-9 || math.Abs(v.Y-500-tc.dy) > 1e-9 {
				t.Errorf("heading %v moved to (%v, %v), expected (%v, %v)",
					tc.heading, v.X, v.Y, 500+tc.dx, 500+tc.dy)
			}
		})
	}
}

func TestMoveBackwardInvertsForward(t *testing.T) {
	v := NewViewer(300, 300, 123, 250, 100)

	v.MoveForward(0.25)
	v.MoveBackward(0.25)

	if math.Abs(v.X-300) > 1e-9 || math.Abs(v.Y-300) > 1e-9 {
		t.Errorf("forward then backward ended at (%v, %v), expected (300, 300)", v.X, v.Y)
	}
}

func TestMovementScalesWithDt(t *testing.T) {
	a := NewViewer(0, 0, 0, 100, 100)
	b := NewViewer(0, 0, 0, 100, 100)

	a.MoveForward(1.0)
	for i := 0; i < 10; i++ {
		b.MoveForward(0.1)
	}

	if math.Abs(a.X-b.X) > 1e-9 {
		t.Errorf("one 1s step = %v, ten 0.1s steps = %v", a.X, b.X)
	}
}
