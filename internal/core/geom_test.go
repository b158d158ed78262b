package core

import "testing"

func TestRectEdgesAndContains(t *testing.T) {
	board := NewRect(3, 1, 58, 22)
	if board.Right() != 61 || board.Bottom() != 23 {
		t.Fatalf("Unexpected edges: right=%d bottom=%d", board.Right(), board.Bottom())
	}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 3, 1, true},
		{"last column", 60, 10, true},
		{"right edge is exclusive", 61, 10, false},
		{"bottom edge is exclusive", 10, 23, false},
		{"left of board", 2, 10, false},
		{"above board", 10, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectInsetIsFrameInterior(t *testing.T) {
	frame := NewRect(0, 0, 10, 6)
	inner := frame.Inset(1)
	if inner != (Rect{X: 1, Y: 1, W: 8, H: 4}) {
		t.Errorf("Unexpected interior %+v", inner)
	}
	if !frame.Contains(inner.Right(), inner.Y) {
		t.Error("The right frame column should still be inside the frame")
	}
	if inner.Contains(0, 0) {
		t.Error("Frame corner must not be in the interior")
	}

	if tiny := NewRect(5, 5, 1, 3).Inset(1); tiny.W != 0 || tiny.H != 1 {
		t.Errorf("Inset should floor at zero, got %+v", tiny)
	}
}

func TestRectCenter(t *testing.T) {
	x, y := NewRect(10, 4, 7, 5).Center()
	if x != 13 || y != 6 {
		t.Errorf("Expected (13, 6), got (%d, %d)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want int }{{-3, 0}, {0, 0}, {2, 2}, {4, 3}}
	for _, tc := range tests {
		if got := Clamp(tc.v, 0, 3); got != tc.want {
			t.Errorf("Clamp(%d, 0, 3) = %d, want %d", tc.v, got, tc.want)
		}
	}
	if got := ClampF(1.7, 0, 1); got != 1 {
		t.Errorf("ClampF(1.7, 0, 1) = %g, want 1", got)
	}
	if got := ClampF(-0.2, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.2, 0, 1) = %g, want 0", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, want int
	}{
		{-1, 28, 27},  // leaving through the left wall
		{28, 28, 0},   // leaving through the right wall
		{-29, 28, 27}, // more than one lap
		{3, 3, 0},     // theme cycling past the last theme
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.val, tc.n, got, tc.want)
		}
	}
}
