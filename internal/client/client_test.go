package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lead-service/internal/model"
)

func TestListLeads_Success(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/leads" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.Lead{
			{ID: 2, Name: "Bob", CreatedAt: now, UpdatedAt: now},
			{ID: 1, Name: "Ann", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	leads, err := c.ListLeads(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 2 || leads[0].Name != "Bob" {
		t.Errorf("unexpected leads: %+v", leads)
	}
}

func TestListLeads_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Server error"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	_, err := c.ListLeads(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Message != "Server error" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestCreateLead_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/leads" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var form Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if form.Name != "Ann" {
			t.Errorf("expected form name Ann, got %q", form.Name)
		}

		now := time.Now().UTC()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.Lead{ID: 7, Name: form.Name, CreatedAt: now, UpdatedAt: now})
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	lead, err := c.CreateLead(context.Background(), validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.ID != 7 {
		t.Errorf("expected server-assigned id 7, got %d", lead.ID)
	}
	if lead.CreatedAt.IsZero() || lead.UpdatedAt.IsZero() {
		t.Error("expected server timestamps")
	}
}

func TestCreateLead_ValidationMessagePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "phone is required"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	_, err := c.CreateLead(context.Background(), validForm())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "phone is required" {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
}

func TestListLeads_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately

	c := NewClient(srv.URL + "/api")
	if _, err := c.ListLeads(context.Background()); err == nil {
		t.Error("expected transport error for unreachable server")
	}
}
