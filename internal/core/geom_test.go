package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "corner overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Intersection is symmetric
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("reverse Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(10, 20, 4, 6)
	if b.X != 8 || b.Y != 17 {
		t.Errorf("BoxAround top-left = (%v, %v), expected (8, 17)", b.X, b.Y)
	}
	c := b.Center()
	if c.X != 10 || c.Y != 20 {
		t.Errorf("Center() = (%v, %v), expected (10, 20)", c.X, c.Y)
	}
}

func TestBoxGrow(t *testing.T) {
	b := BoxAround(0, 0, 10, 10).Grow(1.5)
	if b.W != 15 || b.H != 15 {
		t.Errorf("Grow(1.5) size = (%v, %v), expected (15, 15)", b.W, b.H)
	}
	c := b.Center()
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("Grow should preserve center, got (%v, %v)", c.X, c.Y)
	}
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Errorf("Normalized length = %v, expected 1", v.Len())
	}

	// A zero-length vector must not divide by zero.
	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("zero vector normalized to (%v, %v), expected (0, 0)", zero.X, zero.Y)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, expected 5", got)
	}
	// t is clamped to [0, 1]
	if got := Lerp(0, 10, 2); got != 10 {
		t.Errorf("Lerp(0, 10, 2) = %v, expected 10", got)
	}
	if got := Lerp(0, 10, -1); got != 0 {
		t.Errorf("Lerp(0, 10, -1) = %v, expected 0", got)
	}
}
