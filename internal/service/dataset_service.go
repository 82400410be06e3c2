package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/store"
)

// ErrDatasetUnavailable marks a dataset whose load or decode failed. The
// failure is permanent for the session; handlers map it to 502 rather than
// 400.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// Entity dataset keys accepted in URLs, mapped to dataset names.
var entityDatasets = map[string]string{
	"consumers":   store.DatasetConsumerCountries,
	"producers":   store.DatasetProducerCountries,
	"commodities": store.DatasetCommodities,
}

// DatasetService provides typed access to the raw datasets held by the
// store. Each getter decodes on first use; afterwards the decoded structure
// is shared and must be treated as read-only.
type DatasetService struct {
	store *store.Store
}

// NewDatasetService creates a new dataset service
func NewDatasetService(st *store.Store) *DatasetService {
	return &DatasetService{store: st}
}

// dataset loads and decodes one dataset into T.
func dataset[T any](ctx context.Context, st *store.Store, name string) (T, error) {
	v, err := st.GetOrLoad(ctx, name, func(data []byte) (interface{}, error) {
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrDatasetUnavailable, err)
	}
	return v.(T), nil
}

// Entities resolves a URL dataset key (consumers, producers, commodities) to
// its EntityDataset.
func (s *DatasetService) Entities(ctx context.Context, key string) (models.EntityDataset, error) {
	name, ok := entityDatasets[key]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", key)
	}
	return dataset[models.EntityDataset](ctx, s.store, name)
}

// TopFlows returns the per-year per-mode bilateral flow buckets.
func (s *DatasetService) TopFlows(ctx context.Context) (models.FlowBuckets, error) {
	return dataset[models.FlowBuckets](ctx, s.store, store.DatasetBilateralTopFlows)
}

// FlowsByCommodity returns the commodity-scoped bilateral flows.
func (s *DatasetService) FlowsByCommodity(ctx context.Context) (models.CommodityFlows, error) {
	return dataset[models.CommodityFlows](ctx, s.store, store.DatasetBilateralByCommodity)
}

// TransportFactors returns per-commodity per-mode emission factors.
func (s *DatasetService) TransportFactors(ctx context.Context) (models.TransportFactors, error) {
	return dataset[models.TransportFactors](ctx, s.store, store.DatasetTransportFactors)
}

// CountryMetadata returns the static country reference data.
func (s *DatasetService) CountryMetadata(ctx context.Context) (models.CountryMetadata, error) {
	return dataset[models.CountryMetadata](ctx, s.store, store.DatasetCountryMetadata)
}

// DropdownLists returns the selector option lists.
func (s *DatasetService) DropdownLists(ctx context.Context) (models.DropdownLists, error) {
	return dataset[models.DropdownLists](ctx, s.store, store.DatasetDropdownLists)
}

// GlobalTimeseries returns the world-total yearly series.
func (s *DatasetService) GlobalTimeseries(ctx context.Context) (models.GlobalTimeseries, error) {
	return dataset[models.GlobalTimeseries](ctx, s.store, store.DatasetGlobalTimeseries)
}

// GlobalByMode returns the per-mode breakdown of the world totals.
func (s *DatasetService) GlobalByMode(ctx context.Context) (models.GlobalByMode, error) {
	return dataset[models.GlobalByMode](ctx, s.store, store.DatasetGlobalByMode)
}

// Statuses reports the lifecycle state of every known dataset.
func (s *DatasetService) Statuses() []store.Status {
	names := []string{
		store.DatasetConsumerCountries,
		store.DatasetProducerCountries,
		store.DatasetCommodities,
		store.DatasetBilateralTopFlows,
		store.DatasetBilateralByCommodity,
		store.DatasetTransportFactors,
		store.DatasetCountryMetadata,
		store.DatasetDropdownLists,
		store.DatasetGlobalTimeseries,
		store.DatasetGlobalByMode,
	}
	statuses := make([]store.Status, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, s.store.StatusOf(name))
	}
	return statuses
}
