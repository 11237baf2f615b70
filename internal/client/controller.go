package client

import (
	"context"

	"lead-service/internal/leadview"
	"lead-service/internal/model"
)

// Controller bridges the lead API and UI state. It holds the last
// successfully fetched list and an explicit view state; Visible runs the
// filter/sort engine over both. Methods are meant to be called from a single
// UI goroutine.
type Controller struct {
	api   *Client
	leads []model.Lead
	view  leadview.State
}

// NewController creates a controller over the given API client.
func NewController(api *Client) *Controller {
	return &Controller{api: api}
}

// Refresh fetches the full list from the API. On failure the previously held
// list is kept and the error is returned for the UI to surface.
func (ct *Controller) Refresh(ctx context.Context) error {
	leads, err := ct.api.ListLeads(ctx)
	if err != nil {
		return err
	}
	ct.leads = leads
	return nil
}

// Submit validates the form, creates the lead and re-fetches the full list.
// There is no optimistic insert: the authoritative order and timestamps come
// from the server. On any failure the held list is left untouched and the
// caller keeps the form for correction.
func (ct *Controller) Submit(ctx context.Context, form Form) error {
	if errs := form.Validate(); errs != nil {
		return errs
	}
	if _, err := ct.api.CreateLead(ctx, form); err != nil {
		return err
	}
	return ct.Refresh(ctx)
}

// Visible applies the filter/sort engine to the held list.
func (ct *Controller) Visible() []model.Lead {
	return leadview.Apply(ct.leads, ct.view)
}

// View returns the current view state.
func (ct *Controller) View() leadview.State {
	return ct.view
}

// Search sets the search term.
func (ct *Controller) Search(term string) {
	ct.view.SearchTerm = term
}

// FilterStatus sets the status filter; empty clears it.
func (ct *Controller) FilterStatus(status string) {
	ct.view.StatusFilter = status
}

// SetCombinator selects how search and status predicates combine.
func (ct *Controller) SetCombinator(comb leadview.Combinator) {
	ct.view.Combinator = comb
}

// SortBy toggles sorting on the given column.
func (ct *Controller) SortBy(field leadview.Field) {
	ct.view = ct.view.ToggleSort(field)
}

// ClearFilters resets search, status filter and combinator; sorting is kept.
func (ct *Controller) ClearFilters() {
	ct.view.SearchTerm = ""
	ct.view.StatusFilter = ""
	ct.view.Combinator = leadview.CombinatorAnd
}
