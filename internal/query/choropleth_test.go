package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbajaj/emissions-backend-go/internal/query"
)

func TestBucket_RangeAndEndpoints(t *testing.T) {
	const size = 9

	assert.Equal(t, 0, query.Bucket(10, 10, 1e6, size))
	assert.Equal(t, size-1, query.Bucket(1e6, 10, 1e6, size))

	for _, v := range []float64{10, 100, 1000, 5e4, 2e5, 1e6} {
		b := query.Bucket(v, 10, 1e6, size)
		assert.GreaterOrEqual(t, b, 0)
		assert.Less(t, b, size)
	}
}

func TestBucket_ClampsOutOfDomain(t *testing.T) {
	assert.Equal(t, 0, query.Bucket(1, 10, 1e6, 9))
	assert.Equal(t, 8, query.Bucket(1e9, 10, 1e6, 9))
}

func TestBucket_Monotonic(t *testing.T) {
	prev := -1
	for _, v := range []float64{10, 50, 500, 5e3, 5e4, 5e5, 1e6} {
		b := query.Bucket(v, 10, 1e6, 9)
		assert.GreaterOrEqual(t, b, prev)
		prev = b
	}
}

func TestBucket_DegenerateDomain(t *testing.T) {
	// min == max returns the fixed mid-palette index for any value.
	for _, v := range []float64{0.5, 42, 42000} {
		assert.Equal(t, 4, query.Bucket(v, 42, 42, 9))
	}
	// And is stable across calls.
	first := query.Bucket(7, 42, 42, 9)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, query.Bucket(7, 42, 42, 9))
	}
}

func TestBucket_TinyPalette(t *testing.T) {
	assert.Equal(t, 0, query.Bucket(100, 10, 1e6, 1))
	assert.Equal(t, 0, query.Bucket(100, 10, 1e6, 0))
}

func TestBucketColor(t *testing.T) {
	palette := []string{"#fee", "#fcc", "#f99", "#f66", "#f33"}

	assert.Equal(t, "#fee", query.BucketColor(10, 10, 1e6, palette))
	assert.Equal(t, "#f33", query.BucketColor(1e6, 10, 1e6, palette))
	assert.Equal(t, "#f99", query.BucketColor(123, 42, 42, palette))
	assert.Equal(t, "", query.BucketColor(1, 1, 2, nil))

	// Always a palette member.
	for _, v := range []float64{10, 99, 1234, 1e5, 1e6} {
		assert.Contains(t, palette, query.BucketColor(v, 10, 1e6, palette))
	}
}
