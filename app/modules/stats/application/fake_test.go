package statsservice

import (
	"context"

	"github.com/edenhub/eden-web/app/shared/edenapi"
)

// ------------------------
// Fake API
// ------------------------

type FakeAPI struct {
	trace []string

	ListRunsFunc func(ctx context.Context, serverID string) ([]edenapi.Run, error)
	StatsFunc    func(ctx context.Context) (edenapi.Stats, error)
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

func (f *FakeAPI) Stats(ctx context.Context) (edenapi.Stats, error) {
	f.record("Stats")
	if f.StatsFunc != nil {
		return f.StatsFunc(ctx)
	}
	return edenapi.Stats{}, nil
}
