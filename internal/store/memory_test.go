package store

import (
	"context"
	"errors"
	"testing"

	"lead-service/internal/model"
)

func newLead(name, email string) *model.Lead {
	return &model.Lead{
		Name:          name,
		Phone:         "1234567890",
		Email:         email,
		Status:        model.StatusNew,
		Qualification: "Bachelors",
		InterestField: "Web Development",
		Source:        "Website",
		AssignedTo:    "John Doe",
	}
}

func TestMemoryStore_CreateAssignsIDAndTimestamps(t *testing.T) {
	s := NewMemoryLeadStore()
	ctx := context.Background()

	lead := newLead("Ann", "ann@x.com")
	if err := s.Create(ctx, lead); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if lead.ID == 0 {
		t.Error("expected id to be assigned")
	}
	if lead.CreatedAt.IsZero() || lead.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if !lead.CreatedAt.Equal(lead.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt, got %v / %v", lead.CreatedAt, lead.UpdatedAt)
	}
}

func TestMemoryStore_IDsAreUnique(t *testing.T) {
	s := NewMemoryLeadStore()
	ctx := context.Background()

	seen := map[uint]bool{}
	for i := 0; i < 10; i++ {
		lead := newLead("Ann", "ann@x.com")
		if err := s.Create(ctx, lead); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if seen[lead.ID] {
			t.Fatalf("id %d assigned twice", lead.ID)
		}
		seen[lead.ID] = true
	}
}

func TestMemoryStore_CreateRejectsMissingRequiredField(t *testing.T) {
	s := NewMemoryLeadStore()
	ctx := context.Background()

	lead := newLead("Bob", "bob@x.com")
	lead.Phone = ""
	err := s.Create(ctx, lead)

	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *model.ValidationError, got %v", err)
	}
	if verr.Field != "phone" {
		t.Errorf("expected phone, got %q", verr.Field)
	}

	// Nothing was persisted.
	leads, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leads) != 0 {
		t.Errorf("expected empty store after rejected create, got %d leads", len(leads))
	}
}

func TestMemoryStore_EmptyListIsNotAnError(t *testing.T) {
	s := NewMemoryLeadStore()

	leads, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if leads == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(leads) != 0 {
		t.Errorf("expected 0 leads, got %d", len(leads))
	}
}

func TestMemoryStore_ListOrdersMostRecentFirst(t *testing.T) {
	s := NewMemoryLeadStore()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		if err := s.Create(ctx, newLead(n, n+"@x.com")); err != nil {
			t.Fatalf("create %s failed: %v", n, err)
		}
	}

	leads, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(leads))
	}
	for i := 0; i < len(leads)-1; i++ {
		if leads[i].CreatedAt.Before(leads[i+1].CreatedAt) {
			t.Errorf("lead %d created before lead %d, order not descending", i, i+1)
		}
	}
	// Leads created in the same instant fall back to descending id.
	if leads[0].Name != "third" || leads[2].Name != "first" {
		t.Errorf("unexpected order: %s, %s, %s", leads[0].Name, leads[1].Name, leads[2].Name)
	}
}

func TestMemoryStore_ListReturnsACopy(t *testing.T) {
	s := NewMemoryLeadStore()
	ctx := context.Background()

	if err := s.Create(ctx, newLead("Ann", "ann@x.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, _ := s.List(ctx)
	first[0].Name = "mutated"

	second, _ := s.List(ctx)
	if second[0].Name != "Ann" {
		t.Error("mutating a listed lead must not affect the store")
	}
}
