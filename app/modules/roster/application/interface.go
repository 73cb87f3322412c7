package rosterservice

import (
	"context"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	rosterdomain "github.com/edenhub/eden-web/app/modules/roster/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// Drop is one drag-and-drop of a signup card onto the grid.
// A negative Slot takes the role's first free slot.
type Drop struct {
	Role    types.Role
	Slot    int
	Payload string
}

// Service manages a session's roster board for a run.
type Service interface {
	// Load fetches the run, its roster and signups and replaces the session's board.
	// An invalid difficulty falls back to the run's own.
	Load(ctx context.Context, runID string, difficulty types.Difficulty) (*rosterdomain.Board, error)

	// Current returns the session's board, loading it when absent.
	Current(ctx context.Context, runID string) (*rosterdomain.Board, error)

	// Drop assigns a character optimistically and reverts the board when the API refuses.
	// The returned board reflects the final state, also on error.
	Drop(ctx context.Context, runID, actor string, drop Drop) (*rosterdomain.Board, error)

	// Unassign removes a character optimistically and reverts on failure.
	Unassign(ctx context.Context, runID, actor, characterID string) (*rosterdomain.Board, error)

	// Complete marks the run completed and locks every assigned character.
	Complete(ctx context.Context, runID, actor string) (*rosterdomain.Board, error)

	// Announce posts the roster to Discord.
	Announce(ctx context.Context, runID, actor string, mention bool) error
}

// API is the slice of the Eden API the roster needs.
type API interface {
	GetRoster(ctx context.Context, runID string) ([]edenapi.RosterSlot, error)
	ListSignups(ctx context.Context, runID string) ([]edenapi.Signup, error)
	AddRoster(ctx context.Context, runID string, in edenapi.RosterInput) (edenapi.RosterSlot, error)
	RemoveRoster(ctx context.Context, runID, characterID string) error
	UpdateRunStatus(ctx context.Context, runID string, status types.RunStatus) (edenapi.Run, error)
	AnnounceRun(ctx context.Context, runID string, mention bool) error
}

// Runs looks up a run of the configured server.
type Runs interface {
	Get(ctx context.Context, runID string) (*edenapi.Run, error)
}

// Activity records admin actions on a run.
type Activity interface {
	Record(ctx context.Context, runID, actor string, kind activitydomain.Kind, detail string) error
}
