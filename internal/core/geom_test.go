package core

import (
	"math"
	"testing"
)

func TestFootprintContains(t *testing.T) {
	f := Footprint{MinX: 0, MaxX: 100, MinY: -40, MaxY: 40}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 50, 0, true},
		{"left edge inclusive", 0, 0, true},
		{"right edge inclusive", 100, 40, true},
		{"outside left", -0.1, 0, false},
		{"outside band", 50, 41, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestFootprintClosestPoint(t *testing.T) {
	f := Footprint{MinX: 0, MaxX: 100, MinY: -40, MaxY: 40}

	tests := []struct {
		x, y, ex, ey float64
	}{
		{50, 0, 50, 0},
		{-20, 0, 0, 0},
		{130, 60, 100, 40},
		{50, -90, 50, -40},
	}

	for _, tc := range tests {
		cx, cy := f.ClosestPoint(tc.x, tc.y)
		if cx != tc.ex || cy != tc.ey {
			t.Errorf("ClosestPoint(%v, %v) = (%v, %v), expected (%v, %v)", tc.x, tc.y, cx, cy, tc.ex, tc.ey)
		}
	}
}

func TestNormalize2D(t *testing.T) {
	x, y := Normalize2D(3, 4)
	if math.Abs(x-0.6) > 1e-12 || math.Abs(y-0.8) > 1e-12 {
		t.Errorf("Normalize2D(3, 4) = (%v, %v), expected (0.6, 0.8)", x, y)
	}

	x, y = Normalize2D(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Normalize2D(0, 0) = (%v, %v), expected (0, 0)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
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
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap01(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{1.0, 0.0},
	}

	for _, tc := range tests {
		if got := Wrap01(tc.val); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Wrap01(%v) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(2.5) != 1 {
		t.Error("Sign should return -1, 0, 1")
	}
}
