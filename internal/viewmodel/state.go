package viewmodel

import (
	"github.com/bobmcallan/portfolio-dashboard/internal/models"
)

// Status is the fetch lifecycle of a holdings view.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "loading"
	}
}

// unknownError is shown when a fetch fails without a message.
const unknownError = "Unknown error"

// State is the holdings view state. Transition functions return a new State
// and never modify their argument.
type State struct {
	Status        Status
	Holdings      []models.Holding
	Err           string
	SearchTerm    string
	SortField     models.SortField
	SortDirection models.SortDirection
}

// NewState returns the initial state: loading, no search, symbol ascending.
func NewState() State {
	return State{
		Status:        StatusLoading,
		SortField:     models.SortSymbol,
		SortDirection: models.Ascending,
	}
}

// OnFetchComplete moves to the ready state with the fetched holdings.
func OnFetchComplete(s State, holdings []models.Holding) State {
	s.Status = StatusReady
	s.Holdings = models.CloneHoldings(holdings)
	s.Err = ""
	return s
}

// OnFetchFailed moves to the error state. A nil error yields "Unknown error".
func OnFetchFailed(s State, err error) State {
	s.Status = StatusError
	s.Holdings = nil
	s.Err = unknownError
	if err != nil && err.Error() != "" {
		s.Err = err.Error()
	}
	return s
}

// OnSearchChange replaces the search term.
func OnSearchChange(s State, term string) State {
	s.SearchTerm = term
	return s
}

// OnSortToggle selects field. Selecting a new field sorts it ascending;
// selecting the current field flips the direction.
func OnSortToggle(s State, field models.SortField) State {
	if s.SortField == field {
		s.SortDirection = s.SortDirection.Flip()
		return s
	}
	s.SortField = field
	s.SortDirection = models.Ascending
	return s
}

// Rows returns the holdings to display. Only a ready state has rows.
func Rows(s State) []models.Holding {
	if s.Status != StatusReady {
		return []models.Holding{}
	}
	return Derive(s.Holdings, s.SearchTerm, s.SortField, s.SortDirection)
}

// ParseSortField maps a field name to a SortField, falling back to symbol.
func ParseSortField(name string) models.SortField {
	f := models.SortField(name)
	if f.IsValid() {
		return f
	}
	return models.SortSymbol
}

// ParseSortDirection maps "asc"/"desc" to a direction, falling back to ascending.
func ParseSortDirection(name string) models.SortDirection {
	if models.SortDirection(name) == models.Descending {
		return models.Descending
	}
	return models.Ascending
}
