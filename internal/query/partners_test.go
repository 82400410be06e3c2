package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/query"
)

func partnerFlows() []models.BilateralFlow {
	return []models.BilateralFlow{
		{From: "BRA", To: "DEU", TTW: 900, DominantMode: "maritime"},
		{From: "NLD", To: "DEU", TTW: 400, DominantMode: "land"},
		{From: "DEU", To: "FRA", TTW: 700, DominantMode: "land"},
		{From: "USA", To: "DEU", TTW: 600, DominantMode: "maritime"},
		{From: "DEU", To: "AUT", TTW: 300, DominantMode: "land"},
	}
}

func TestTopPartners_Imports(t *testing.T) {
	partners := query.TopPartners(partnerFlows(), "DEU", query.DirectionImports, 10)

	require.Len(t, partners, 3)
	assert.Equal(t, "BRA", partners[0].ISO3)
	assert.Equal(t, "USA", partners[1].ISO3)
	assert.Equal(t, "NLD", partners[2].ISO3)
}

func TestTopPartners_Exports(t *testing.T) {
	partners := query.TopPartners(partnerFlows(), "DEU", query.DirectionExports, 10)

	require.Len(t, partners, 2)
	assert.Equal(t, "FRA", partners[0].ISO3)
	assert.Equal(t, "AUT", partners[1].ISO3)
}

func TestTopPartners_Truncation(t *testing.T) {
	partners := query.TopPartners(partnerFlows(), "DEU", query.DirectionImports, 2)

	require.Len(t, partners, 2)
	assert.Equal(t, "BRA", partners[0].ISO3)
	assert.Equal(t, "USA", partners[1].ISO3)
}

func TestTopPartners_NoFlows(t *testing.T) {
	assert.Empty(t, query.TopPartners(nil, "DEU", query.DirectionImports, 5))
	assert.Empty(t, query.TopPartners(partnerFlows(), "JPN", query.DirectionImports, 5))
}
