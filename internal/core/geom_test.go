package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	plane := NewRectF(110, 223.5, 50, 43)

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"segment ahead", NewRectF(400, 190, 50, 50), false},
		{"segment overlapping nose", NewRectF(150, 190, 50, 50), true},
		{"segment touching right edge", NewRectF(160, 190, 50, 50), false},
		{"segment above", NewRectF(120, 150, 50, 50), false},
		{"segment overlapping by a fraction", NewRectF(159.5, 266, 50, 50), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects(%+v) = %v, expected %v", tc.other, got, tc.expected)
			}
		})
	}
}

func TestRectFScale(t *testing.T) {
	tests := []struct {
		name     string
		r        RectF
		sx, sy   float64
		expected Rect
	}{
		{"exact cells", NewRectF(10, 20, 20, 40), 5, 10, NewRect(2, 2, 4, 4)},
		{"partial cells round outward", NewRectF(12, 25, 10, 10), 5, 10, NewRect(2, 2, 3, 2)},
		{"tiny box keeps one cell", NewRectF(1, 1, 0.1, 0.1), 5, 10, NewRect(0, 0, 1, 1)},
		{"negative x", NewRectF(-7, 0, 10, 10), 5, 10, NewRect(-2, 0, 3, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Scale(tc.sx, tc.sy); got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
