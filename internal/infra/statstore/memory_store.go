package statstore

import (
	"context"
	"sort"
	"sync"

	"github.com/sunvolt/solarsite/internal/domain/lead"
)

// MemoryStore is an in-memory implementation of the stats store for
// tests/dev and for running without Valkey.
type MemoryStore struct {
	mu        sync.RWMutex
	quotes    int64
	kw        float64
	locations map[string]int64
	displays  map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locations: make(map[string]int64),
		displays:  make(map[string]string),
	}
}

// RecordQuote bumps the counters for one served estimate.
func (s *MemoryStore) RecordQuote(_ context.Context, canonical, display string, systemKw float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes++
	s.kw += systemKw
	if canonical == "" {
		return nil
	}
	s.locations[canonical]++
	if _, exists := s.displays[canonical]; !exists && display != "" {
		s.displays[canonical] = display
	}
	return nil
}

// Summary returns the running totals.
func (s *MemoryStore) Summary(context.Context) (lead.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lead.Stats{TotalQuotes: s.quotes, TotalKw: s.kw}, nil
}

// TopLocations returns the most frequent locations, display-cased.
func (s *MemoryStore) TopLocations(_ context.Context, limit int) ([]lead.LocationCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.locations)
	}
	items := make([]lead.LocationCount, 0, len(s.locations))
	for canonical, count := range s.locations {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, lead.LocationCount{Location: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Location < items[j].Location
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ lead.StatsStore = (*MemoryStore)(nil)
