package model

import (
	"slices"

	"medibook/shared/failure"
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusChecked   Status = "checked"
)

// transitions lists the legal next states per state. Cancelled and completed
// are terminal: they have no outgoing edges.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusChecked, StatusCompleted},
	StatusChecked:   {StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ActiveStatuses are the states that count against slot availability.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// ActiveStatusStrings returns the active statuses as plain strings for use in
// repository filters.
func ActiveStatusStrings() []string {
	statuses := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		statuses[i] = string(s)
	}

	return statuses
}

// ValidStatus reports whether s names a known lifecycle state.
func ValidStatus(s Status) bool {
	_, ok := transitions[s]

	return ok
}

// IsActive reports whether the status counts against slot availability.
func (s Status) IsActive() bool {
	return slices.Contains(ActiveStatuses, s)
}

// IsTerminal reports whether no transition leads out of the status.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]

	return ok && len(next) == 0
}

// CanTransitionTo reports whether the edge s → to is legal.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(transitions[s], to)
}

// Transition validates the edge from → to and returns a typed failure naming
// both states when it is illegal.
func Transition(from, to Status) error {
	if !ValidStatus(from) || !ValidStatus(to) {
		return failure.InvalidTransition(string(from), string(to)) //nolint:wrapcheck
	}

	if !from.CanTransitionTo(to) {
		return failure.InvalidTransition(string(from), string(to)) //nolint:wrapcheck
	}

	return nil
}
