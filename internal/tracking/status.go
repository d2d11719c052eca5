// Package tracking defines the state machine for a student's progress on a
// saved scholarship.
//
// Valid status graph:
//
//	SAVED ──► APPLIED ◄──► TRACKING
//	  │          │            │
//	  └──────────┴────────────┴──► COMPLETED   (APPLIED/TRACKING only)
//
// SAVED may move straight to TRACKING. COMPLETED is terminal.
package tracking

import (
	"fmt"
	"strings"
)

// Status values mirror the user_scholarships.status column.
type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusTracking  Status = "tracking"
	StatusCompleted Status = "completed"
)

var validTransitions = map[Status][]Status{
	StatusSaved:    {StatusApplied, StatusTracking},
	StatusApplied:  {StatusTracking, StatusCompleted},
	StatusTracking: {StatusApplied, StatusCompleted},
}

// ParseStatus converts a raw string to a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusSaved, StatusApplied, StatusTracking, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown tracking status %q", s)
}

// IsTransitionAllowed reports whether from → to is permitted. Staying in the
// same status is always allowed.
func IsTransitionAllowed(from, to Status) bool {
	if from == to {
		return true
	}
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave s.
func IsTerminal(s Status) bool {
	_, ok := validTransitions[s]
	return !ok
}

// ListFilter narrows a student's tracked scholarships.
type ListFilter string

const (
	FilterAll      ListFilter = "all"
	FilterSaved    ListFilter = "saved"
	FilterApplied  ListFilter = "applied"
	FilterTracking ListFilter = "tracking"
)

// ParseListFilter falls back to FilterAll for unknown values.
func ParseListFilter(s string) ListFilter {
	switch f := ListFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterSaved, FilterApplied, FilterTracking:
		return f
	}
	return FilterAll
}

// Accepts reports whether an entry with the given status passes the filter.
// Every tracked entry counts as saved.
func (f ListFilter) Accepts(s Status) bool {
	switch f {
	case FilterApplied:
		return s == StatusApplied
	case FilterTracking:
		return s == StatusTracking
	default:
		return true
	}
}
