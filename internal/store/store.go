// Package store holds the immutable raw datasets the query layer reads.
// The store is insert-only: a dataset name maps to exactly one decoded value
// (or one permanent load error) for the process lifetime. There is no
// eviction and no invalidation; datasets are versioned by deployment, not by
// runtime events.
package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/kbajaj/emissions-backend-go/internal/metrics"
)

// Dataset names as written by the preprocessing pipeline.
const (
	DatasetConsumerCountries    = "consumer_countries"
	DatasetProducerCountries    = "producer_countries"
	DatasetCommodities          = "commodities"
	DatasetBilateralTopFlows    = "bilateral_top_flows"
	DatasetBilateralByCommodity = "bilateral_by_commodity"
	DatasetTransportFactors     = "transport_factors"
	DatasetCountryMetadata      = "country_metadata"
	DatasetDropdownLists        = "dropdown_lists"
	DatasetGlobalTimeseries     = "global_timeseries"
	DatasetGlobalByMode         = "global_by_mode"
)

// DecodeFunc turns raw dataset bytes into the typed in-memory structure the
// store caches.
type DecodeFunc func(data []byte) (interface{}, error)

type entry struct {
	value interface{}
	err   error
}

// Store is the process-wide dataset cache. It is passed as an explicit
// handle, never accessed as a package global.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	loading map[string]bool

	group  singleflight.Group
	loader Loader
	logger *zap.Logger
}

// New creates an empty store backed by the given loader.
func New(loader Loader, logger *zap.Logger) *Store {
	return &Store{
		entries: make(map[string]entry),
		loading: make(map[string]bool),
		loader:  loader,
		logger:  logger,
	}
}

// Get returns the resident value for a dataset, if any. A dataset whose load
// failed is not resident.
func (s *Store) Get(name string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[name]
	if !ok || e.err != nil {
		return nil, false
	}
	return e.value, true
}

// Has reports whether the dataset is resident.
func (s *Store) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// IsLoading reports whether a load for the dataset is in flight.
func (s *Store) IsLoading(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[name]
}

// LoadErr returns the recorded load failure for a dataset, if any.
func (s *Store) LoadErr(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[name].err
}

// GetOrLoad returns the resident value for a dataset, loading and decoding
// it on first use. Concurrent calls for the same name share a single
// in-flight load; at most one load per dataset name is ever outstanding.
// The outcome is recorded permanently: a failed dataset stays failed for the
// session (callers surface it as a per-dataset error state, per the no-retry
// policy of the external loader).
func (s *Store) GetOrLoad(ctx context.Context, name string, decode DecodeFunc) (interface{}, error) {
	s.mu.RLock()
	e, ok := s.entries[name]
	s.mu.RUnlock()
	if ok {
		return e.value, e.err
	}

	v, err, _ := s.group.Do(name, func() (interface{}, error) {
		// Re-check: a previous flight may have completed between the
		// read above and entering the group.
		s.mu.Lock()
		if e, ok := s.entries[name]; ok {
			s.mu.Unlock()
			return e.value, e.err
		}
		s.loading[name] = true
		s.mu.Unlock()

		value, err := s.load(ctx, name, decode)

		s.mu.Lock()
		s.entries[name] = entry{value: value, err: err}
		delete(s.loading, name)
		s.mu.Unlock()

		return value, err
	})
	return v, err
}

func (s *Store) load(ctx context.Context, name string, decode DecodeFunc) (interface{}, error) {
	// Loads have no cancellation semantics: a superseded request discards
	// the result, but the load itself completes and its outcome is shared.
	// Tying it to the first caller's context would let one disconnecting
	// client poison the dataset for the whole session.
	data, err := s.loader.Load(context.WithoutCancel(ctx), name)
	if err != nil {
		metrics.DatasetLoad(name, "error")
		s.logger.Error("dataset load failed", zap.String("dataset", name), zap.Error(err))
		return nil, fmt.Errorf("load dataset %s: %w", name, err)
	}

	value, err := decode(data)
	if err != nil {
		metrics.DatasetLoad(name, "malformed")
		s.logger.Error("dataset decode failed", zap.String("dataset", name), zap.Error(err))
		return nil, fmt.Errorf("decode dataset %s: %w", name, err)
	}

	metrics.DatasetLoad(name, "ok")
	s.logger.Info("dataset loaded",
		zap.String("dataset", name),
		zap.Int("bytes", len(data)),
	)
	return value, nil
}

// Status describes one dataset's lifecycle state for the status endpoint.
type Status struct {
	Name    string `json:"name"`
	State   string `json:"state"` // absent, loading, loaded, failed
	Message string `json:"message,omitempty"`
}

// StatusOf reports the lifecycle state of a dataset.
func (s *Store) StatusOf(name string) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loading[name] {
		return Status{Name: name, State: "loading"}
	}
	if e, ok := s.entries[name]; ok {
		if e.err != nil {
			return Status{Name: name, State: "failed", Message: e.err.Error()}
		}
		return Status{Name: name, State: "loaded"}
	}
	return Status{Name: name, State: "absent"}
}
