package activitydomain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is the bus topic activity events travel on.
const Topic = "eden.activity"

// RecentLimit is how many events the run page shows.
const RecentLimit = 20

// Kind classifies an activity event.
type Kind string

const (
	KindRosterAssigned Kind = "roster.assigned"
	KindRosterRemoved  Kind = "roster.removed"
	KindRunCompleted   Kind = "run.completed"
	KindRunAnnounced   Kind = "run.announced"
)

// IsValid checks if the kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindRosterAssigned, KindRosterRemoved, KindRunCompleted, KindRunAnnounced:
		return true
	default:
		return false
	}
}

// Event is one admin action on a run.
type Event struct {
	ID     string    `json:"id"`
	RunID  string    `json:"run_id"`
	Actor  string    `json:"actor"`
	Kind   Kind      `json:"kind"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}

// NewEvent stamps a new event with a fresh id.
func NewEvent(runID, actor string, kind Kind, detail string, at time.Time) Event {
	return Event{
		ID:     uuid.NewString(),
		RunID:  runID,
		Actor:  actor,
		Kind:   kind,
		Detail: detail,
		At:     at.UTC(),
	}
}
