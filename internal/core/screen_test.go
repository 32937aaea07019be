package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return a blank cell
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	wall := RGB{160, 82, 45}
	s.SetCell(3, 4, Cell{Rune: '█', FG: wall})

	got := s.GetCell(3, 4)
	if got.Rune != '█' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '█'", got.Rune)
	}
	if got.FG != wall {
		t.Errorf("GetCell(3, 4).FG = %v, expected %v", got.FG, wall)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, Cell{Rune: 'X', FG: ColorWhite})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("Clear() left %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize(5, 5) gave %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(2, 3).Rune != 'A' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(20, 20)
	if s.GetCell(2, 3).Rune != 'A' {
		t.Error("Growing resize should preserve content")
	}
	if s.GetCell(9, 9).Rune != ' ' {
		t.Error("Content lost in the shrink should stay lost")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello", ColorGray)

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}
	if s.GetCell(2, 1).FG != ColorGray {
		t.Error("DrawText should apply the given color")
	}

	// Clipped text should not panic
	s.DrawText(8, 0, "overflow", ColorWhite)
	if s.GetCell(9, 0).Rune != 'v' {
		t.Errorf("clipped text mismatch: got %q", s.GetCell(9, 0).Rune)
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(5, 8)
	fg := RGB{10, 200, 30}
	s.DrawVLine(2, 1, 5, '│', fg)

	for y := 1; y < 6; y++ {
		c := s.GetCell(2, y)
		if c.Rune != '│' || c.FG != fg {
			t.Errorf("DrawVLine cell (2, %d) = %v", y, c)
		}
	}
	if s.GetCell(2, 0).Rune != ' ' || s.GetCell(2, 6).Rune != ' ' {
		t.Error("DrawVLine drew outside its range")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
