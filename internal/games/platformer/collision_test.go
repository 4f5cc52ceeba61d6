package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCollider(t *testing.T) Collider {
	t.Helper()
	platforms := []Platform{
		{X1: 0, X2: 100, Z: 30, W: 100, D: 80},
		{X1: 50, X2: 150, Z: 60, W: 100, D: 80},
	}
	return NewCollider(platforms, defaultConfig(t))
}

func TestGroundHeightAt(t *testing.T) {
	c := testCollider(t)

	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"open floor", -10, 0, 0},
		{"low platform", 10, 0, 30},
		{"overlap takes highest", 75, 0, 60},
		{"inclusive edge", 150, 0, 60},
		{"just past edge", 150.5, 0, 0},
		{"outside path band", 75, 45, 0},
		{"band edge", 75, -40, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.GroundHeightAt(tc.x, tc.y))
		})
	}
}

func TestGroundHeightNeverNegative(t *testing.T) {
	cfg := defaultConfig(t)
	w, _ := Generate(11, cfg)
	c := NewCollider(w.Platforms, cfg)

	for x := -cfg.World.HalfLength; x <= cfg.World.HalfLength; x += 3 {
		for _, y := range []float64{-60, -40, 0, 40, 60} {
			assert.GreaterOrEqual(t, c.GroundHeightAt(x, y), 0.0)
		}
	}
}

func TestIsBlocked(t *testing.T) {
	c := testCollider(t)

	tests := []struct {
		name     string
		x, y, z  float64
		expected bool
	}{
		{"inside from below", 120, 0, 0, true},
		{"under both", 75, 0, 40, true},
		{"within surface tolerance", 120, 0, 59, false},
		{"just past tolerance", 120, 0, 57.5, true},
		{"on top", 120, 0, 60, false},
		{"above", 120, 0, 100, false},
		{"beside", 200, 0, 0, false},
		{"outside depth", 120, 45, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.IsBlocked(tc.x, tc.y, tc.z))
		})
	}
}

func TestCollidesWithAny(t *testing.T) {
	c := testCollider(t)

	// Circle overlaps the right platform's edge near its top.
	hit, ok := c.CollidesWithAny(160, 0, 55)
	assert.True(t, ok)
	assert.Equal(t, 60.0, hit.Z)

	// Too far to the side.
	_, ok = c.CollidesWithAny(170, 0, 60)
	assert.False(t, ok)

	// Feet well below the top: a wall, not an edge.
	_, ok = c.CollidesWithAny(160, 0, 20)
	assert.False(t, ok)

	// Both tops are inside the window; the higher one wins.
	tall := NewCollider([]Platform{
		{X1: 0, X2: 100, Z: 50, W: 100, D: 80},
		{X1: 0, X2: 100, Z: 58, W: 100, D: 80},
	}, defaultConfig(t))
	hit, ok = tall.CollidesWithAny(-5, 0, 55)
	assert.True(t, ok)
	assert.Equal(t, 58.0, hit.Z)
}
