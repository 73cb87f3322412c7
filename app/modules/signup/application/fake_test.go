package signupservice

import (
	"context"
	"sync"

	"github.com/edenhub/eden-web/app/shared/edenapi"
)

// ------------------------
// Fake API
// ------------------------

type FakeAPI struct {
	mu    sync.Mutex
	trace []string

	ListRunsFunc     func(ctx context.Context, serverID string) ([]edenapi.Run, error)
	ListSignupsFunc  func(ctx context.Context, runID string) ([]edenapi.Signup, error)
	CreateSignupFunc func(ctx context.Context, runID string, in edenapi.SignupInput) (edenapi.Signup, error)
	CancelSignupFunc func(ctx context.Context, runID string) error
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

func (f *FakeAPI) ListRuns(ctx context.Context, serverID string) ([]edenapi.Run, error) {
	f.record("ListRuns")
	if f.ListRunsFunc != nil {
		return f.ListRunsFunc(ctx, serverID)
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

func (f *FakeAPI) CreateSignup(ctx context.Context, runID string, in edenapi.SignupInput) (edenapi.Signup, error) {
	f.record("CreateSignup")
	if f.CreateSignupFunc != nil {
		return f.CreateSignupFunc(ctx, runID, in)
	}
	return edenapi.Signup{RunID: runID, Type: in.Type}, nil
}

func (f *FakeAPI) CancelSignup(ctx context.Context, runID string) error {
	f.record("CancelSignup")
	if f.CancelSignupFunc != nil {
		return f.CancelSignupFunc(ctx, runID)
	}
	return nil
}
