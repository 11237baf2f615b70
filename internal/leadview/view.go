// Package leadview filters and sorts a fetched lead list for display. It is
// a pure transformation over an explicit view state: no network access, no
// hidden state, safe to re-run on every keystroke.
package leadview

import (
	"sort"
	"strings"

	"lead-service/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Combinator joins the search and status predicates.
type Combinator string

const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// State is the serializable view state the engine runs over. The zero value
// means no filtering (AND with empty predicates matches everything) and no
// sorting.
type State struct {
	SearchTerm   string
	StatusFilter string
	Combinator   Combinator
	SortField    Field // empty: keep the incoming order
	SortDir      Direction
}

// ToggleSort returns the state after a sort request on field: requesting the
// current sort field again flips the direction, a new field resets to
// ascending.
func (s State) ToggleSort(field Field) State {
	if s.SortField == field {
		if s.SortDir == Ascending {
			s.SortDir = Descending
		} else {
			s.SortDir = Ascending
		}
		return s
	}
	s.SortField = field
	s.SortDir = Ascending
	return s
}

// matchesSearch reports whether the term occurs in the lead's name, email or
// phone. Name and email compare case-insensitively. An empty term matches
// every lead.
func matchesSearch(l *model.Lead, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(l.Name), lower) ||
		strings.Contains(strings.ToLower(l.Email), lower) ||
		strings.Contains(l.Phone, term)
}

// matchesStatus reports whether the lead's status equals the filter exactly.
// An empty filter matches every lead.
func matchesStatus(l *model.Lead, status string) bool {
	return status == "" || l.Status == status
}

// Apply runs the filter and sort over leads and returns a new slice; the
// input is never reordered or mutated. Work is linear in the number of leads
// plus the sort.
func Apply(leads []model.Lead, state State) []model.Lead {
	out := make([]model.Lead, 0, len(leads))
	for i := range leads {
		search := matchesSearch(&leads[i], state.SearchTerm)
		status := matchesStatus(&leads[i], state.StatusFilter)

		var keep bool
		if state.Combinator == CombinatorOr {
			keep = search || status
		} else {
			keep = search && status
		}
		if keep {
			out = append(out, leads[i])
		}
	}

	if state.SortField == "" {
		return out
	}

	c := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := c.CompareString(state.SortField.value(&out[i]), state.SortField.value(&out[j]))
		if state.SortDir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}
