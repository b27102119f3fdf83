package leadrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sunvolt/solarsite/internal/domain/lead"
	"github.com/sunvolt/solarsite/pkg/util"
)

// MemoryRepository keeps records in memory. It backs local development and
// tests, and the server falls back to it when Postgres is unreachable.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []lead.Record
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Insert stores one archived estimate.
func (r *MemoryRepository) Insert(_ context.Context, rec lead.Record) (lead.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = util.NowUTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return rec, nil
}

// Recent returns the newest records first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]lead.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]lead.Record, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

// Len reports how many records are stored.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

var _ lead.Repository = (*MemoryRepository)(nil)
