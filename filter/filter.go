package filter

import (
	"strings"
	"sync"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
)

// Apply returns the places satisfying every predicate, preserving the input
// order. It is pure: it never mutates its arguments and depends only on them.
func Apply(places []models.Place, params models.FilterParams) []models.Place {
	term := strings.ToLower(params.SearchTerm)
	out := make([]models.Place, 0, len(places))
	for i := range places {
		if matches(&places[i], term, params) {
			out = append(out, places[i])
		}
	}
	return out
}

// Indices returns the raw-list positions of the places Apply would keep,
// in the same order. Positions are the transient card keys.
func Indices(places []models.Place, params models.FilterParams) []int {
	term := strings.ToLower(params.SearchTerm)
	out := make([]int, 0, len(places))
	for i := range places {
		if matches(&places[i], term, params) {
			out = append(out, i)
		}
	}
	return out
}

func matches(p *models.Place, term string, params models.FilterParams) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(p.Title), term) &&
		!strings.Contains(strings.ToLower(p.Address), term) {
		return false
	}

	if params.SelectedType != models.TypeAll && p.Type != params.SelectedType {
		return false
	}

	// Places closed specifically today never show, whatever the status filter.
	if p.Info == models.InfoClosedToday {
		return false
	}

	switch params.StatusFilter {
	case models.StatusOpen:
		if p.Info != models.InfoOpen {
			return false
		}
	case models.StatusClosed:
		if p.Info != models.InfoClosed {
			return false
		}
	}

	if p.DistanceFromUser.Valid && p.DistanceFromUser.Float64 > params.MaxDistance {
		return false
	}

	return true
}

// TypeOptions derives the type selector entries from the current raw list:
// the "All" sentinel plus every distinct type, in first-appearance order.
func TypeOptions(places []models.Place) []string {
	opts := []string{models.TypeAll}
	seen := make(map[string]struct{}, len(places))
	for i := range places {
		t := places[i].Type
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		opts = append(opts, t)
	}
	return opts
}

// Memo caches the most recent evaluation keyed by the exact input tuple:
// the raw-list generation plus the filter params. Anything else recomputes.
type Memo struct {
	mu      sync.Mutex
	valid   bool
	gen     uint64
	params  models.FilterParams
	places  []models.Place
	indices []int
}

// Eval returns the filtered places and their raw-list positions, reusing the
// cached result when inputs are unchanged.
func (m *Memo) Eval(gen uint64, places []models.Place, params models.FilterParams) ([]models.Place, []int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.gen == gen && m.params == params {
		return m.places, m.indices
	}

	m.valid = true
	m.gen = gen
	m.params = params
	m.places = Apply(places, params)
	m.indices = Indices(places, params)
	return m.places, m.indices
}

func (m *Memo) Invalidate() {
	m.mu.Lock()
	m.valid = false
	m.mu.Unlock()
}
