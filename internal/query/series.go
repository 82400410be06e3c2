package query

import (
	"math"
	"strconv"

	"github.com/kbajaj/emissions-backend-go/internal/models"
)

// Default chart range. 2024 exists in some datasets as a preliminary year
// and is excluded from the default window.
const (
	DefaultStartYear = 2010
	DefaultEndYear   = 2023
)

// BuildSeries produces one point per year in [startYear, endYear] inclusive,
// in ascending order. Gaps appear as zeros, never as missing indices, so the
// series length is always endYear-startYear+1 and chart components never see
// a jagged series. Raw values are divided by divisor and then rounded to the
// nearest integer (rounding after scaling, not before). A divisor <= 0 is
// treated as 1.
func BuildSeries(ds models.EntityDataset, entityID string, startYear, endYear int, metric models.Metric, divisor float64) []models.SeriesPoint {
	if endYear < startYear {
		return []models.SeriesPoint{}
	}
	if divisor <= 0 {
		divisor = 1
	}

	series := make([]models.SeriesPoint, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		r := Resolve(ds, entityID, strconv.Itoa(year), metric)
		series = append(series, models.SeriesPoint{
			Year:          year,
			Domestic:      int64(math.Round(r.Domestic / divisor)),
			International: int64(math.Round(r.Bilateral / divisor)),
		})
	}
	return series
}
