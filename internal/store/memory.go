package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"lead-service/internal/model"
)

// MemoryLeadStore keeps leads in process memory. It mirrors the semantics of
// GormLeadStore (validation, generated ids, timestamps, descending list) and
// backs handler and client tests.
type MemoryLeadStore struct {
	mu     sync.RWMutex
	nextID uint
	leads  []model.Lead
}

func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{nextID: 1}
}

func (s *MemoryLeadStore) List(ctx context.Context) ([]model.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Lead, len(s.leads))
	copy(out, s.leads)
	// Most recent first; ids break ties between leads created within the
	// same clock tick.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryLeadStore) Create(ctx context.Context, lead *model.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	lead.ID = s.nextID
	s.nextID++
	lead.CreatedAt = now
	lead.UpdatedAt = now

	s.leads = append(s.leads, *lead)
	return nil
}
