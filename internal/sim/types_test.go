package sim

import "testing"

func TestHeading(t *testing.T) {
	tests := []struct {
		h        Heading
		opposite Heading
		valid    bool
		name     string
	}{
		{Up, Down, true, "up"},
		{Down, Up, true, "down"},
		{Left, Right, true, "left"},
		{Right, Left, true, "right"},
		{Heading{}, Heading{}, false, "none"},
		{Heading{DX: 1, DY: 1}, Heading{DX: -1, DY: -1}, false, "none"},
		{Heading{DX: 2}, Heading{DX: -2}, false, "none"},
	}

	for _, tc := range tests {
		if got := tc.h.Opposite(); got != tc.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.h, got, tc.opposite)
		}
		if got := tc.h.Valid(); got != tc.valid {
			t.Errorf("%v.Valid() = %v, expected %v", tc.h, got, tc.valid)
		}
		if got := tc.h.String(); got != tc.name {
			t.Errorf("String() = %q, expected %q", got, tc.name)
		}
	}
}

func TestNewSnake(t *testing.T) {
	sn := NewSnake(Cell{X: 5, Y: 5}, Down, 4)
	body := sn.Body()
	if len(body) != 4 || sn.Len() != 4 {
		t.Fatalf("Expected 4 cells, got %v", body)
	}
	if sn.Head() != (Cell{X: 5, Y: 5}) || sn.Tail() != (Cell{X: 5, Y: 2}) {
		t.Errorf("Expected tail (5,2) and head (5,5), got %v", body)
	}

	body[0] = Cell{X: 99, Y: 99}
	if sn.Tail() == (Cell{X: 99, Y: 99}) {
		t.Error("Body should return a copy")
	}
}

func TestRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("Default rules should validate: %v", err)
	}

	tests := []struct {
		name   string
		adjust func(*Rules)
	}{
		{"tiny board", func(r *Rules) { r.Width = 2 }},
		{"start below min", func(r *Rules) { r.StartLength = 2 }},
		{"start too long", func(r *Rules) { r.StartLength = 20 }},
		{"zero min speed", func(r *Rules) { r.MinSpeed = 0 }},
		{"inverted speeds", func(r *Rules) { r.MaxSpeed = 1 }},
		{"no bonus growth", func(r *Rules) { r.BonusGrowth = 0 }},
		{"negative speed-down step", func(r *Rules) { r.SpeedDownStep = -1 }},
		{"negative shrink cut", func(r *Rules) { r.ShrinkCut = -2 }},
		{"negative normal score", func(r *Rules) { r.NormalScore = -10 }},
		{"negative combo step", func(r *Rules) { r.ComboStep = -4 }},
		{"negative teleport score", func(r *Rules) { r.TeleportScore = -1 }},
		{"descending chances", func(r *Rules) { r.ShrinkChance = 0.1 }},
		{"chance above one", func(r *Rules) { r.TeleportChance = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()
			tc.adjust(&r)
			if err := r.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestClampSpeed(t *testing.T) {
	r := DefaultRules()
	if got := r.ClampSpeed(1); got != r.MinSpeed {
		t.Errorf("Expected %g, got %g", r.MinSpeed, got)
	}
	if got := r.ClampSpeed(100); got != r.MaxSpeed {
		t.Errorf("Expected %g, got %g", r.MaxSpeed, got)
	}
	if got := r.ClampSpeed(8); got != 8 {
		t.Errorf("Expected 8, got %g", got)
	}
}
