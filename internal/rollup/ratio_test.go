package rollup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafePercent(t *testing.T) {
	assert.Equal(t, 50.0, SafePercent(1, 2))
	assert.Equal(t, 150.0, SafePercent(3, 2))
	assert.Equal(t, -50.0, SafePercent(-1, 2))

	// The zero divisor must yield the sentinel, never NaN or Inf
	got := SafePercent(5, 0)
	assert.Equal(t, 0.0, got)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-10, 0, 100))
	assert.Equal(t, 100.0, Clamp(250, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 75, RoundPercent(75.0))
	assert.Equal(t, 76, RoundPercent(75.5))
	assert.Equal(t, 75, RoundPercent(75.4))
}
