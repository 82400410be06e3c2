package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/query"
)

func sampleDataset() models.EntityDataset {
	return models.EntityDataset{
		"USA": {
			"2023": {
				Domestic: &models.RouteMetric{TTW: 500000, WTW: 620000, FoodMiles: 1e9, Value: 1},
			},
			"2022": {
				Bilateral: &models.RouteMetric{TTW: 120000, WTW: 150000, FoodMiles: 4e8, Value: 9},
				Domestic:  &models.RouteMetric{TTW: 480000, WTW: 600000, FoodMiles: 9e8, Value: 2},
			},
		},
		"DEU": {
			"2023": {
				Bilateral: &models.RouteMetric{TTW: 300000, WTW: 360000, FoodMiles: 7e8, Value: 5},
			},
		},
	}
}

func TestResolve_DomesticOnly(t *testing.T) {
	r := query.Resolve(sampleDataset(), "USA", "2023", models.MetricTTW)

	assert.Equal(t, 0.0, r.Bilateral)
	assert.Equal(t, 500000.0, r.Domestic)
	assert.Equal(t, 500000.0, r.Total)
	assert.Equal(t, 1e9, r.FoodMiles)
}

func TestResolve_BothRoutes(t *testing.T) {
	r := query.Resolve(sampleDataset(), "USA", "2022", models.MetricTTW)

	assert.Equal(t, 120000.0, r.Bilateral)
	assert.Equal(t, 480000.0, r.Domestic)
	assert.Equal(t, 600000.0, r.Total)
}

func TestResolve_ZeroDefaults(t *testing.T) {
	ds := sampleDataset()

	cases := []struct {
		name   string
		entity string
		year   string
	}{
		{"missing entity", "FRA", "2023"},
		{"missing year", "USA", "2019"},
		{"empty dataset", "USA", "2023"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := ds
			if tc.name == "empty dataset" {
				d = models.EntityDataset{}
			}
			r := query.Resolve(d, tc.entity, tc.year, models.MetricTTW)
			assert.Equal(t, models.Resolved{}, r)
		})
	}
}

func TestResolve_TotalIsSumAndNonNegative(t *testing.T) {
	ds := sampleDataset()
	for entity := range ds {
		for year := range ds[entity] {
			r := query.Resolve(ds, entity, year, models.MetricTTW)
			assert.Equal(t, r.Bilateral+r.Domestic, r.Total)
			assert.GreaterOrEqual(t, r.Bilateral, 0.0)
			assert.GreaterOrEqual(t, r.Domestic, 0.0)
			assert.GreaterOrEqual(t, r.Total, 0.0)
		}
	}
}

func TestResolve_MetricSelection(t *testing.T) {
	ds := sampleDataset()

	r := query.Resolve(ds, "USA", "2022", models.MetricWTW)
	assert.Equal(t, 150000.0, r.Bilateral)
	assert.Equal(t, 600000.0, r.Domestic)

	r = query.Resolve(ds, "USA", "2022", models.MetricValue)
	assert.Equal(t, 11.0, r.Total)
}

func TestHasData(t *testing.T) {
	ds := sampleDataset()

	assert.True(t, query.HasData(ds, "USA", "2023"))
	assert.False(t, query.HasData(ds, "USA", "2010"))
	assert.False(t, query.HasData(ds, "FRA", "2023"))

	// A year key with neither route present counts as no data.
	ds["ESP"] = map[string]models.YearRecord{"2023": {}}
	assert.False(t, query.HasData(ds, "ESP", "2023"))
}

func TestParseMetric_DefaultsToTTW(t *testing.T) {
	require.Equal(t, models.MetricTTW, models.ParseMetric(""))
	require.Equal(t, models.MetricTTW, models.ParseMetric("bogus"))
	require.Equal(t, models.MetricFoodMiles, models.ParseMetric("food_miles"))
}
