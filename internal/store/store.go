package store

import (
	"context"

	"lead-service/internal/model"
)

// LeadStore is the persistence abstraction holding all lead records.
type LeadStore interface {
	// List returns all leads ordered by creation time, most recent first.
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]model.Lead, error)

	// Create validates the lead's required fields, persists it and fills the
	// generated id and timestamps. Returns *model.ValidationError when a
	// required field is empty and *StoreError when persistence fails.
	Create(ctx context.Context, lead *model.Lead) error
}

// StoreError wraps a persistence failure. The underlying driver error is kept
// for logging but never serialized to clients.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
