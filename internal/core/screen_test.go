package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Expected 6x2, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "      \n      " {
		t.Errorf("Expected blank screen, got %q", s.String())
	}
	if NewScreen(-1, 3).Width() != 0 {
		t.Error("Negative sizes should clamp to zero")
	}
}

func TestSetCellClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 3)
	head := Cell{Rune: '▶', Color: ColorHead}
	s.SetCell(1, 1, head)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetCell(p[0], p[1], head) // must not panic
	}

	if got := s.GetCell(1, 1); got != head {
		t.Errorf("Expected %+v, got %+v", head, got)
	}
	if got := s.GetCell(10, 10); got != blankCell {
		t.Errorf("Out-of-bounds read should be blank, got %+v", got)
	}
	if strings.Count(s.String(), "▶") != 1 {
		t.Errorf("Only the in-bounds write should land:\n%s", s.String())
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(5, 0, "Score", ColorMuted)

	if s.String() != "     Sco" {
		t.Errorf("Text should clip at the right edge, got %q", s.String())
	}
	if c := s.GetCell(5, 0); c.Color != ColorMuted || c.Rune != 'S' {
		t.Errorf("Unexpected cell %+v", c)
	}
}

func TestDrawTextRight(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawTextRight(11, 0, "x3", ColorWarn)
	s.DrawTextRight(8, 0, "●★", ColorFood)

	if got := s.String(); got != "      ●★ x3 " {
		t.Errorf("Unexpected right-aligned text %q", got)
	}
}

func TestDrawBoxColored(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBoxColored(NewRect(0, 0, 5, 3), ColorMuted)
	want := "╭───╮\n│   │\n╰───╯"
	if s.String() != want {
		t.Errorf("Unexpected box:\n%s", s.String())
	}

	s.Clear()
	s.DrawBoxColored(NewRect(0, 0, 3, 2), ColorDefault)
	if !strings.HasPrefix(s.String(), "┌─┐") {
		t.Errorf("Default color should use square corners, got:\n%s", s.String())
	}

	s.Clear()
	s.DrawBoxColored(NewRect(0, 0, 1, 3), ColorMuted)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Boxes narrower than 2 cells are not drawn")
	}
}

func TestFillRectOverlay(t *testing.T) {
	s := NewScreen(6, 3)
	for y := range 3 {
		s.DrawText(0, y, "······")
	}
	s.FillRect(NewRect(1, 1, 4, 1), Cell{Rune: ' '})

	if s.String() != "······\n·    ·\n······" {
		t.Errorf("Unexpected overlay:\n%s", s.String())
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if s.String() != "ab\nef\n  " {
		t.Errorf("Unexpected content after resize: %q", s.String())
	}

	s.Resize(3, 1)
	if s.String() != "ab " {
		t.Errorf("Unexpected content after second resize: %q", s.String())
	}
}

func TestShadeIsPreserved(t *testing.T) {
	s := NewScreen(2, 1)
	c := Cell{Rune: '█', Color: ColorSnake, Shade: 128}
	s.SetCell(0, 0, c)
	if s.GetCell(0, 0).Shade != 128 {
		t.Error("Shade must survive a round trip through the buffer")
	}
	s.Clear()
	if s.GetCell(0, 0) != blankCell {
		t.Error("Clear should reset shade and color")
	}
}

func TestTextWidth(t *testing.T) {
	if TextWidth("Golden +50") != 10 || TextWidth("⣿▶●") != 3 {
		t.Error("TextWidth should count runes")
	}
}
