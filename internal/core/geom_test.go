package core

import "testing"

func TestBoxAroundIntersects(t *testing.T) {
	const size = 48.0

	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"same center", Vec2{0, 0}, Vec2{0, 0}, true},
		{"partial overlap", Vec2{0, 0}, Vec2{30, -20}, true},
		{"touching edges", Vec2{0, 0}, Vec2{48, 0}, false},
		{"touching corners", Vec2{0, 0}, Vec2{48, 48}, false},
		{"just inside", Vec2{0, 0}, Vec2{47.9, 0}, true},
		{"far apart", Vec2{-300, 100}, Vec2{300, -100}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := BoxAround(tc.a, size, size)
			b := BoxAround(tc.b, size, size)
			if result := a.Intersects(b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			if result := b.Intersects(a); result != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestBoxAroundBounds(t *testing.T) {
	b := BoxAround(Vec2{X: 10, Y: -4}, 8, 6)

	if b.MinX != 6 || b.MaxX != 14 || b.MinY != -7 || b.MaxY != -1 {
		t.Errorf("BoxAround() = %+v, expected {6 -7 14 -1}", b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDuration().Milliseconds(); got != 16 {
		t.Errorf("TickDuration() = %dms, expected 16ms at 60 ticks/s", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickDuration(); got <= 0 {
		t.Errorf("TickDuration() with zero rate = %v, expected a positive fallback", got)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionMoveBack) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionMoveBack)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionMoveBack) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionMoveBack) {
		t.Error("Clone should be independent of the original")
	}
}
