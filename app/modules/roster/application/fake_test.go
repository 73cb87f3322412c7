package rosterservice

import (
	"context"
	"sync"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// ------------------------
// Fake API
// ------------------------

type FakeAPI struct {
	mu    sync.Mutex
	trace []string

	GetRosterFunc       func(ctx context.Context, runID string) ([]edenapi.RosterSlot, error)
	ListSignupsFunc     func(ctx context.Context, runID string) ([]edenapi.Signup, error)
	AddRosterFunc       func(ctx context.Context, runID string, in edenapi.RosterInput) (edenapi.RosterSlot, error)
	RemoveRosterFunc    func(ctx context.Context, runID, characterID string) error
	UpdateRunStatusFunc func(ctx context.Context, runID string, status types.RunStatus) (edenapi.Run, error)
	AnnounceRunFunc     func(ctx context.Context, runID string, mention bool) error
}

func (f *FakeAPI) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *FakeAPI) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeAPI) GetRoster(ctx context.Context, runID string) ([]edenapi.RosterSlot, error) {
	f.record("GetRoster")
	if f.GetRosterFunc != nil {
		return f.GetRosterFunc(ctx, runID)
	}
	return nil, nil
}

func (f *FakeAPI) ListSignups(ctx context.Context, runID string) ([]edenapi.Signup, error) {
	f.record("ListSignups")
	if f.ListSignupsFunc != nil {
		return f.ListSignupsFunc(ctx, runID)
	}
	return nil, nil
}

func (f *FakeAPI) AddRoster(ctx context.Context, runID string, in edenapi.RosterInput) (edenapi.RosterSlot, error) {
	f.record("AddRoster")
	if f.AddRosterFunc != nil {
		return f.AddRosterFunc(ctx, runID, in)
	}
	return edenapi.RosterSlot{RunID: runID, UserID: in.UserID, CharacterID: in.CharacterID, AssignedRole: in.AssignedRole}, nil
}

func (f *FakeAPI) RemoveRoster(ctx context.Context, runID, characterID string) error {
	f.record("RemoveRoster")
	if f.RemoveRosterFunc != nil {
		return f.RemoveRosterFunc(ctx, runID, characterID)
	}
	return nil
}

func (f *FakeAPI) UpdateRunStatus(ctx context.Context, runID string, status types.RunStatus) (edenapi.Run, error) {
	f.record("UpdateRunStatus")
	if f.UpdateRunStatusFunc != nil {
		return f.UpdateRunStatusFunc(ctx, runID, status)
	}
	return edenapi.Run{ID: runID, Status: status}, nil
}

func (f *FakeAPI) AnnounceRun(ctx context.Context, runID string, mention bool) error {
	f.record("AnnounceRun")
	if f.AnnounceRunFunc != nil {
		return f.AnnounceRunFunc(ctx, runID, mention)
	}
	return nil
}

// ------------------------
// Fake Runs
// ------------------------

type FakeRuns struct {
	GetFunc func(ctx context.Context, runID string) (*edenapi.Run, error)
}

func (f *FakeRuns) Get(ctx context.Context, runID string) (*edenapi.Run, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, runID)
	}
	return &edenapi.Run{ID: runID}, nil
}

// ------------------------
// Fake Activity
// ------------------------

type recorded struct {
	RunID  string
	Actor  string
	Kind   activitydomain.Kind
	Detail string
}

type FakeActivity struct {
	mu     sync.Mutex
	events []recorded

	RecordFunc func(ctx context.Context, runID, actor string, kind activitydomain.Kind, detail string) error
}

func (f *FakeActivity) Events() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.events...)
}

func (f *FakeActivity) Record(ctx context.Context, runID, actor string, kind activitydomain.Kind, detail string) error {
	f.mu.Lock()
	f.events = append(f.events, recorded{RunID: runID, Actor: actor, Kind: kind, Detail: detail})
	f.mu.Unlock()
	if f.RecordFunc != nil {
		return f.RecordFunc(ctx, runID, actor, kind, detail)
	}
	return nil
}
