package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbajaj/emissions-backend-go/internal/stats"
)

func TestSumMeanMinMax(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	assert.Equal(t, 10.0, stats.Sum(values))
	assert.Equal(t, 2.5, stats.Mean(values))
	assert.Equal(t, 1.0, stats.Min(values))
	assert.Equal(t, 4.0, stats.Max(values))
}

func TestEmptySlices(t *testing.T) {
	assert.Equal(t, 0.0, stats.Sum(nil))
	assert.Equal(t, 0.0, stats.Mean(nil))
	assert.Equal(t, 0.0, stats.Min(nil))
	assert.Equal(t, 0.0, stats.Max(nil))
}

func TestPositiveDomain(t *testing.T) {
	min, max, ok := stats.PositiveDomain([]float64{0, 5, 0, 2, 9})
	assert.True(t, ok)
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 9.0, max)

	_, _, ok = stats.PositiveDomain([]float64{0, 0})
	assert.False(t, ok)

	_, _, ok = stats.PositiveDomain(nil)
	assert.False(t, ok)

	min, max, ok = stats.PositiveDomain([]float64{7})
	assert.True(t, ok)
	assert.Equal(t, 7.0, min)
	assert.Equal(t, 7.0, max)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, stats.Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, stats.Clamp(2, 0, 1))
	assert.Equal(t, 0.5, stats.Clamp(0.5, 0, 1))
}
