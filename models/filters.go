package models

import "github.com/volatiletech/null"

type StatusFilter string

const (
	StatusAll    StatusFilter = "Tous"
	StatusOpen   StatusFilter = "Ouvert"
	StatusClosed StatusFilter = "Fermé"
)

func (s StatusFilter) Valid() bool {
	return s == StatusAll || s == StatusOpen || s == StatusClosed
}

// TypeAll is the sentinel meaning no type constraint.
const TypeAll = "All"

// FilterParams is the full set of inputs the filter evaluator depends on.
// It is comparable so derived results can be memoized on the exact tuple.
type FilterParams struct {
	SearchTerm   string       `json:"searchTerm"`
	SelectedType string       `json:"selectedType"`
	StatusFilter StatusFilter `json:"statusFilter"`
	MaxDistance  float64      `json:"maxDistance"`
}

// FilterUpdate is a partial update of FilterParams; absent fields leave
// the current value untouched.
type FilterUpdate struct {
	SearchTerm   null.String  `json:"searchTerm"`
	SelectedType null.String  `json:"selectedType"`
	StatusFilter null.String  `json:"statusFilter"`
	MaxDistance  null.Float64 `json:"maxDistance"`
}
