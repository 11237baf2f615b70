package store

import (
	"context"
	"time"

	"lead-service/internal/model"
	"lead-service/prometheus"

	"gorm.io/gorm"
)

// GormLeadStore persists leads in PostgreSQL through GORM.
type GormLeadStore struct {
	db *gorm.DB
}

// NewGormLeadStore creates a store backed by the given database handle.
func NewGormLeadStore(db *gorm.DB) *GormLeadStore {
	return &GormLeadStore{db: db}
}

// List returns all leads, most recently created first.
func (s *GormLeadStore) List(ctx context.Context) ([]model.Lead, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	leads := []model.Lead{}
	result := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&leads)
	if result.Error != nil {
		return nil, &StoreError{Op: "list", Err: result.Error}
	}

	prometheus.UpdateLeadsTotal(int64(len(leads)))
	return leads, nil
}

// Create validates and inserts a lead. GORM assigns the id and sets
// CreatedAt and UpdatedAt to the same instant on insert.
func (s *GormLeadStore) Create(ctx context.Context, lead *model.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if result := s.db.WithContext(ctx).Create(lead); result.Error != nil {
		return &StoreError{Op: "create", Err: result.Error}
	}
	return nil
}
