package runservice

import (
	"context"

	"github.com/edenhub/eden-web/app/shared/edenapi"
)

// ------------------------
// Fake API
// ------------------------

type FakeAPI struct {
	trace []string

	ListRunsFunc  func(ctx context.Context, serverID string) ([]edenapi.Run, error)
	GetRunFunc    func(ctx context.Context, serverID, runID string) (edenapi.Run, error)
	CreateRunFunc func(ctx context.Context, in edenapi.RunInput) (edenapi.Run, error)
	UpdateRunFunc func(ctx context.Context, runID string, in edenapi.RunUpdate) (edenapi.Run, error)
	DeleteRunFunc func(ctx context.Context, runID string) error
	StatsFunc     func(ctx context.Context) (edenapi.Stats, error)
}

func (f *FakeAPI) Trace() []string {
	return f.trace
}

func (f *FakeAPI) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAPI) ListRuns(ctx context.Context, serverID string) ([]edenapi.Run, error) {
	f.record("ListRuns")
	if f.ListRunsFunc != nil {
		return f.ListRunsFunc(ctx, serverID)
	}
	return nil, nil
}

func (f *FakeAPI) GetRun(ctx context.Context, serverID, runID string) (edenapi.Run, error) {
	f.record("GetRun")
	if f.GetRunFunc != nil {
		return f.GetRunFunc(ctx, serverID, runID)
	}
	return edenapi.Run{ID: runID}, nil
}

func (f *FakeAPI) CreateRun(ctx context.Context, in edenapi.RunInput) (edenapi.Run, error) {
	f.record("CreateRun")
	if f.CreateRunFunc != nil {
		return f.CreateRunFunc(ctx, in)
	}
	return edenapi.Run{ID: "new", Title: in.Title}, nil
}

func (f *FakeAPI) UpdateRun(ctx context.Context, runID string, in edenapi.RunUpdate) (edenapi.Run, error) {
	f.record("UpdateRun")
	if f.UpdateRunFunc != nil {
		return f.UpdateRunFunc(ctx, runID, in)
	}
	return edenapi.Run{ID: runID}, nil
}

func (f *FakeAPI) DeleteRun(ctx context.Context, runID string) error {
	f.record("DeleteRun")
	if f.DeleteRunFunc != nil {
		return f.DeleteRunFunc(ctx, runID)
	}
	return nil
}

func (f *FakeAPI) Stats(ctx context.Context) (edenapi.Stats, error) {
	f.record("Stats")
	if f.StatsFunc != nil {
		return f.StatsFunc(ctx)
	}
	return edenapi.Stats{}, nil
}
