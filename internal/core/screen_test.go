package core

import (
	"strings"
	"testing"
)

// row returns line y of the screen's plain-text form.
func row(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '█', ColorGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != '█' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green block", cell)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)

	if s.GetCell(-1, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawTextColor(0, 0, "XXXX", ColorRed)
	s.Clear()

	for x := 0; x < 4; x++ {
		if s.GetCell(x, 0) != blank {
			t.Errorf("After Clear, expected blank at (%d, 0), got %+v", x, s.GetCell(x, 0))
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorCyan)

	for i, ch := range "Hello" {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("DrawTextColor: expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawTextColor(18, 0, "Hello", ColorDefault) // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColor(0, 0, "·█·", ColorDefault)
	if got := row(s, 0); got != "·█·  " {
		t.Errorf("row 0 = %q, expected glyphs in consecutive cells", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColor(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColor(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(row(s, 0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row(s, 0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(row(s, 0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row(s, 0))
	}
	if got := row(s, 7); got != strings.Repeat(" ", 15) {
		t.Errorf("grown rows should be blank, got %q", got)
	}
}
