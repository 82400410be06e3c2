package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kbajaj/emissions-backend-go/internal/service"
	"github.com/kbajaj/emissions-backend-go/internal/store"
)

func referenceLoader() mapLoader {
	l := testLoader()
	l[store.DatasetTransportFactors] = []byte(`{
		"Wheat": {"maritime": {"wtw": 12.5, "ttw": 10.1, "distance": 8000, "routes": 120}},
		"Wheat and products": {"land": {"wtw": 30, "ttw": 25, "distance": 900, "routes": 40}}
	}`)
	l[store.DatasetDropdownLists] = []byte(`{
		"commodities": ["Bananas", "Wheat"],
		"countries": [{"iso3": "DEU", "name": "Germany"}, {"iso3": "USA", "name": "United States of America"}],
		"years": [2010, 2011, 2023],
		"preliminary_years": [2024]
	}`)
	l[store.DatasetGlobalTimeseries] = []byte(`{
		"years": [2010, 2011],
		"trade_volume_mt": [800.5, 820.1],
		"wtw_emissions_mtco2": [1100.2, 1150.7],
		"ttw_emissions_mtco2": [900.4, 930.9],
		"wtt_emissions_mtco2": [199.8, 219.8],
		"food_miles_billion_tkm": [5000.1, 5100.9],
		"preliminary_years": [2024]
	}`)
	l[store.DatasetGlobalByMode] = []byte(`{
		"2023": [
			{"mode": "maritime", "wtw": 700, "ttw": 600, "wtt": 100, "food_miles": 4000, "value": 500},
			{"mode": "air", "wtw": 90, "ttw": 80, "wtt": 10, "food_miles": 100, "value": 200}
		]
	}`)
	return l
}

func newReferenceService(l mapLoader) *service.ReferenceService {
	st := store.New(l, zap.NewNop())
	return service.NewReferenceService(service.NewDatasetService(st))
}

func TestFactors_ExactAndFallback(t *testing.T) {
	ref := newReferenceService(referenceLoader())

	modes, found, err := ref.Factors(context.Background(), "Wheat")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 10.1, modes["maritime"].TTW)

	modes, found, err = ref.Factors(context.Background(), "Wheat flour")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 10.1, modes["maritime"].TTW)

	_, found, err = ref.Factors(context.Background(), "Dragonfruit")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDropdowns(t *testing.T) {
	ref := newReferenceService(referenceLoader())

	lists, err := ref.Dropdowns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bananas", "Wheat"}, lists.Commodities)
	assert.Equal(t, []int{2024}, lists.PreliminaryYears)
	require.Len(t, lists.Countries, 2)
	assert.Equal(t, "DEU", lists.Countries[0].ISO3)
}

func TestGlobalTimeseries(t *testing.T) {
	ref := newReferenceService(referenceLoader())

	series, err := ref.GlobalTimeseries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2010, 2011}, series.Years)
	assert.InDelta(t, 930.9, series.TTWEmissionsMtCO2[1], 1e-9)
}

func TestGlobalByMode(t *testing.T) {
	ref := newReferenceService(referenceLoader())

	byMode, err := ref.GlobalByMode(context.Background())
	require.NoError(t, err)
	require.Len(t, byMode["2023"], 2)
	assert.Equal(t, "maritime", byMode["2023"][0].Mode)
}

func TestCountries(t *testing.T) {
	ref := newReferenceService(referenceLoader())

	countries, err := ref.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Germany", countries["DEU"].Name)
}
