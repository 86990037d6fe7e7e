package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.InDelta(t, 0.5, Map(25, 0, 50, 1, 0), 1e-12)
	assert.InDelta(t, 10.0, Map(0, 0, 255, 10, 0), 1e-12)
	assert.InDelta(t, 0.0, Map(255, 0, 255, 10, 0), 1e-12)
	// Unclamped outside the input range
	assert.InDelta(t, -1.0, Map(100, 0, 50, 1, 0), 1e-12)
}

func TestMapDegenerateRange(t *testing.T) {
	got := Map(3, 5, 5, 7, 9)
	assert.False(t, math.IsNaN(got))
	assert.Equal(t, 7.0, got)
}

func TestMapClamped(t *testing.T) {
	assert.Equal(t, 0.0, MapClamped(80, 0, 50, 1, 0))
	assert.Equal(t, 1.0, MapClamped(-5, 0, 50, 1, 0))
	assert.Equal(t, 0.3, MapClamped(40, 0, 20, 0.05, 0.3))
	assert.Equal(t, 0.05, MapClamped(0, 0, 20, 0.05, 0.3))
}

func TestConstrain(t *testing.T) {
	assert.Equal(t, 1.0, Constrain(0.2, 1, 4))
	assert.Equal(t, 4.0, Constrain(9, 1, 4))
	assert.Equal(t, 2.5, Constrain(2.5, 1, 4))
	assert.Equal(t, 1.0, Constrain(math.NaN(), 1, 4))
}

func TestLerpAndDist(t *testing.T) {
	assert.InDelta(t, 8.0, Lerp(0, 100, 0.08), 1e-12)
	assert.InDelta(t, 5.0, Dist(0, 0, 3, 4), 1e-12)
	assert.Equal(t, 0.0, Dist(2, 2, 2, 2))
}
