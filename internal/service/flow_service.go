package service

import (
	"context"
	"fmt"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/query"
	"github.com/kbajaj/emissions-backend-go/internal/spatial"
)

// FlowService handles business logic for bilateral trade flows and trade
// partner views.
type FlowService struct {
	datasets *DatasetService
}

// NewFlowService creates a new flow service
func NewFlowService(datasets *DatasetService) *FlowService {
	return &FlowService{datasets: datasets}
}

// Flows filters bilateral flows and enriches the survivors with endpoint
// coordinates and corridor length for the map renderer. A metadata load
// failure degrades to flows without geometry.
func (s *FlowService) Flows(ctx context.Context, f models.FlowFilter) ([]models.FlowView, error) {
	if f.Year == "" {
		return nil, fmt.Errorf("year is required")
	}
	if f.Mode == "" && f.Commodity == "" {
		f.Mode = models.ModeAll
	}

	buckets, err := s.datasets.TopFlows(ctx)
	if err != nil {
		return nil, err
	}

	var commodityFlows models.CommodityFlows
	if f.Commodity != "" {
		commodityFlows, err = s.datasets.FlowsByCommodity(ctx)
		if err != nil {
			return nil, err
		}
	}

	meta, err := s.datasets.CountryMetadata(ctx)
	if err != nil {
		meta = models.CountryMetadata{}
	}

	flows := query.FilterFlows(buckets, commodityFlows, f)
	views := make([]models.FlowView, 0, len(flows))
	for _, flow := range flows {
		from := meta[flow.From]
		to := meta[flow.To]
		views = append(views, models.FlowView{
			BilateralFlow: flow,
			FromLat:       from.Lat,
			FromLng:       from.Lng,
			ToLat:         to.Lat,
			ToLng:         to.Lng,
			DistanceKm:    spatial.CorridorDistanceKm(meta, flow.From, flow.To),
		})
	}
	return views, nil
}

// Partners returns a country's top trade partners by TTW for a year, taken
// from the cross-mode "all" bucket, with partner names filled in from the
// country metadata when available.
func (s *FlowService) Partners(ctx context.Context, iso3 string, f models.PartnerFilter) ([]models.PartnerEntry, error) {
	if f.Year == "" {
		return nil, fmt.Errorf("year is required")
	}
	if f.Direction == "" {
		f.Direction = query.DirectionImports
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}

	buckets, err := s.datasets.TopFlows(ctx)
	if err != nil {
		return nil, err
	}

	meta, err := s.datasets.CountryMetadata(ctx)
	if err != nil {
		meta = models.CountryMetadata{}
	}

	partners := query.TopPartners(buckets[f.Year][models.ModeAll], iso3, f.Direction, f.Limit)
	for i := range partners {
		partners[i].Name = meta[partners[i].ISO3].Name
	}
	return partners, nil
}
