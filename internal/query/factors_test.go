package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/query"
)

func factorSet() models.TransportFactors {
	return models.TransportFactors{
		"Wheat": {
			"maritime": {WTW: 12.5, TTW: 10.1, Distance: 8000, Routes: 120},
		},
		"Wheat and products": {
			"land": {WTW: 30.0, TTW: 25.0, Distance: 900, Routes: 40},
		},
		"Bananas": {
			"maritime": {WTW: 20.0, TTW: 17.0, Distance: 9500, Routes: 60},
		},
	}
}

func TestResolveFactors_ExactMatchWins(t *testing.T) {
	// "Wheat" matches exactly even though "Wheat and products" also shares
	// the first token; exact always takes precedence over fallback.
	modes, ok := query.ResolveFactors(factorSet(), "Wheat")
	require.True(t, ok)
	_, hasMaritime := modes["maritime"]
	assert.True(t, hasMaritime)
	_, hasLand := modes["land"]
	assert.False(t, hasLand)
}

func TestResolveFactors_PrefixFallback(t *testing.T) {
	// "Wheat flour" has no exact key; the first lexicographic key whose
	// first token is "wheat" is "Wheat".
	modes, ok := query.ResolveFactors(factorSet(), "Wheat flour")
	require.True(t, ok)
	_, hasMaritime := modes["maritime"]
	assert.True(t, hasMaritime)
}

func TestResolveFactors_CaseInsensitiveFallback(t *testing.T) {
	modes, ok := query.ResolveFactors(factorSet(), "BANANAS fresh")
	require.True(t, ok)
	assert.Equal(t, 17.0, modes["maritime"].TTW)
}

func TestResolveFactors_NoMatch(t *testing.T) {
	_, ok := query.ResolveFactors(factorSet(), "Dragonfruit")
	assert.False(t, ok)

	_, ok = query.ResolveFactors(factorSet(), "   ")
	assert.False(t, ok)

	_, ok = query.ResolveFactors(models.TransportFactors{}, "Wheat")
	assert.False(t, ok)
}
