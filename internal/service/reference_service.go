package service

import (
	"context"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/query"
)

// ReferenceService handles business logic for reference data: transport
// factors, country metadata, dropdown lists and the global series.
type ReferenceService struct {
	datasets *DatasetService
}

// NewReferenceService creates a new reference service
func NewReferenceService(datasets *DatasetService) *ReferenceService {
	return &ReferenceService{datasets: datasets}
}

// Factors resolves a commodity's per-mode transport factors, using exact
// match first and the prefix fallback otherwise. found is false when neither
// stage matches.
func (s *ReferenceService) Factors(ctx context.Context, commodity string) (map[string]models.TransportModeFactor, bool, error) {
	factors, err := s.datasets.TransportFactors(ctx)
	if err != nil {
		return nil, false, err
	}
	modes, found := query.ResolveFactors(factors, commodity)
	return modes, found, nil
}

// Countries returns the static country metadata.
func (s *ReferenceService) Countries(ctx context.Context) (models.CountryMetadata, error) {
	return s.datasets.CountryMetadata(ctx)
}

// Dropdowns returns the selector option lists.
func (s *ReferenceService) Dropdowns(ctx context.Context) (models.DropdownLists, error) {
	return s.datasets.DropdownLists(ctx)
}

// GlobalTimeseries returns the world-total yearly series.
func (s *ReferenceService) GlobalTimeseries(ctx context.Context) (models.GlobalTimeseries, error) {
	return s.datasets.GlobalTimeseries(ctx)
}

// GlobalByMode returns the per-mode breakdown of world totals by year.
func (s *ReferenceService) GlobalByMode(ctx context.Context) (models.GlobalByMode, error) {
	return s.datasets.GlobalByMode(ctx)
}
