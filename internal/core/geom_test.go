package core

import "testing"

func TestRectIntersectsCircle(t *testing.T) {
	trap := RectF{X: 10, Y: 10, W: 22, H: 18}

	tests := []struct {
		name     string
		r        RectF
		c        Circle
		expected bool
	}{
		{
			name:     "center inside rect",
			r:        trap,
			c:        Circle{X: 20, Y: 20, R: 10},
			expected: true,
		},
		{
			name:     "far away",
			r:        trap,
			c:        Circle{X: 100, Y: 100, R: 10},
			expected: false,
		},
		{
			name:     "touching left edge",
			r:        trap,
			c:        Circle{X: 0, Y: 15, R: 10},
			expected: true,
		},
		{
			name:     "just outside left edge",
			r:        trap,
			c:        Circle{X: -0.5, Y: 15, R: 10},
			expected: false,
		},
		{
			name:     "near corner inside radius",
			r:        trap,
			c:        Circle{X: 37, Y: 33, R: 8},
			expected: true,
		},
		{
			name:     "near corner outside radius",
			r:        trap,
			c:        Circle{X: 40, Y: 36, R: 8},
			expected: false,
		},
		{
			name:     "above rect",
			r:        trap,
			c:        Circle{X: 20, Y: -5, R: 10},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.IntersectsCircle(tc.c)
			if result != tc.expected {
				t.Errorf("IntersectsCircle() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	f := RectF{X: 1.5, Y: 2, W: 3, H: 4}
	if f.Right() != 4.5 || f.Bottom() != 6 {
		t.Errorf("RectF edges = (%v, %v), expected (4.5, 6)", f.Right(), f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-1.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-1.5, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %v, expected 0.25", got)
	}
	if got := ClampF(3, 0, 1); got != 1 {
		t.Errorf("ClampF(3, 0, 1) = %v, expected 1", got)
	}
}
