package service

import (
	"context"
	"fmt"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/query"
	"github.com/kbajaj/emissions-backend-go/internal/stats"
)

// EmissionsService handles business logic for per-entity emission views:
// time series, rankings, shares and choropleth maps.
type EmissionsService struct {
	datasets *DatasetService
}

// NewEmissionsService creates a new emissions service
func NewEmissionsService(datasets *DatasetService) *EmissionsService {
	return &EmissionsService{datasets: datasets}
}

// Series builds the yearly domestic/international series for one entity.
func (s *EmissionsService) Series(ctx context.Context, datasetKey, entityID string, f models.SeriesFilter) ([]models.SeriesPoint, error) {
	if f.StartYear == 0 {
		f.StartYear = query.DefaultStartYear
	}
	if f.EndYear == 0 {
		f.EndYear = query.DefaultEndYear
	}
	if f.EndYear < f.StartYear {
		return nil, fmt.Errorf("start year must not exceed end year")
	}

	ds, err := s.datasets.Entities(ctx, datasetKey)
	if err != nil {
		return nil, err
	}
	return query.BuildSeries(ds, entityID, f.StartYear, f.EndYear, models.ParseMetric(f.Metric), f.Divisor), nil
}

// Rankings returns the descending ranking for a year, optionally truncated.
func (s *EmissionsService) Rankings(ctx context.Context, datasetKey string, f models.RankingFilter) ([]models.RankEntry, error) {
	if f.Year == "" {
		return nil, fmt.Errorf("year is required")
	}

	ds, err := s.datasets.Entities(ctx, datasetKey)
	if err != nil {
		return nil, err
	}

	ranking := query.Rank(ds, f.Year, models.ParseMetric(f.Metric))
	if f.Limit > 0 && len(ranking) > f.Limit {
		ranking = ranking[:f.Limit]
	}
	return ranking, nil
}

// RankOf locates one entity inside the full ranking for a year.
func (s *EmissionsService) RankOf(ctx context.Context, datasetKey, entityID string, f models.RankingFilter) (models.RankPosition, error) {
	if f.Year == "" {
		return models.RankPosition{}, fmt.Errorf("year is required")
	}

	ds, err := s.datasets.Entities(ctx, datasetKey)
	if err != nil {
		return models.RankPosition{}, err
	}
	return query.RankOf(ds, f.Year, entityID, models.ParseMetric(f.Metric)), nil
}

// InternationalShare returns the bilateral percentage of total TTW for a year.
func (s *EmissionsService) InternationalShare(ctx context.Context, datasetKey, year string) (float64, error) {
	if year == "" {
		return 0, fmt.Errorf("year is required")
	}

	ds, err := s.datasets.Entities(ctx, datasetKey)
	if err != nil {
		return 0, err
	}
	return query.InternationalShare(ds, year), nil
}

// ChoroplethMap computes the color bucket of every entity for a year against
// the observed positive domain. Entities with value 0 get bucket -1, the
// no-data sentinel colored separately by the map renderer. Country metadata
// failures degrade to a map without coordinates; metadata is enrichment, not
// a dependency of the bucketing.
func (s *EmissionsService) ChoroplethMap(ctx context.Context, datasetKey string, f models.MapFilter) ([]models.MapEntry, error) {
	if f.Year == "" {
		return nil, fmt.Errorf("year is required")
	}
	if f.Buckets <= 0 {
		f.Buckets = 9
	}

	ds, err := s.datasets.Entities(ctx, datasetKey)
	if err != nil {
		return nil, err
	}

	meta, err := s.datasets.CountryMetadata(ctx)
	if err != nil {
		meta = models.CountryMetadata{}
	}

	metric := models.ParseMetric(f.Metric)
	ranking := query.Rank(ds, f.Year, metric)

	values := make([]float64, 0, len(ranking))
	for _, e := range ranking {
		values = append(values, e.Value)
	}
	min, max, ok := stats.PositiveDomain(values)

	entries := make([]models.MapEntry, 0, len(ranking))
	for _, e := range ranking {
		bucket := -1
		if ok && e.Value > 0 {
			bucket = query.Bucket(e.Value, min, max, f.Buckets)
		}
		m := meta[e.EntityID]
		entries = append(entries, models.MapEntry{
			EntityID: e.EntityID,
			Name:     m.Name,
			Value:    e.Value,
			Bucket:   bucket,
			Lat:      m.Lat,
			Lng:      m.Lng,
		})
	}
	return entries, nil
}
