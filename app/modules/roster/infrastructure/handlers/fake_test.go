package rosterhandlers

import (
	"context"
	"net/http"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	rosterservice "github.com/edenhub/eden-web/app/modules/roster/application"
	rosterdomain "github.com/edenhub/eden-web/app/modules/roster/domain"
	"github.com/edenhub/eden-web/app/types"
	"github.com/edenhub/eden-web/app/web"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	LoadFunc     func(ctx context.Context, runID string, difficulty types.Difficulty) (*rosterdomain.Board, error)
	CurrentFunc  func(ctx context.Context, runID string) (*rosterdomain.Board, error)
	DropFunc     func(ctx context.Context, runID, actor string, drop rosterservice.Drop) (*rosterdomain.Board, error)
	UnassignFunc func(ctx context.Context, runID, actor, characterID string) (*rosterdomain.Board, error)
	CompleteFunc func(ctx context.Context, runID, actor string) (*rosterdomain.Board, error)
	AnnounceFunc func(ctx context.Context, runID, actor string, mention bool) error
}

func (f *FakeService) Trace() []string {
	return f.trace
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) Load(ctx context.Context, runID string, difficulty types.Difficulty) (*rosterdomain.Board, error) {
	f.record("Load")
	if f.LoadFunc != nil {
		return f.LoadFunc(ctx, runID, difficulty)
	}
	return nil, nil
}

func (f *FakeService) Current(ctx context.Context, runID string) (*rosterdomain.Board, error) {
	f.record("Current")
	if f.CurrentFunc != nil {
		return f.CurrentFunc(ctx, runID)
	}
	return nil, nil
}

func (f *FakeService) Drop(ctx context.Context, runID, actor string, drop rosterservice.Drop) (*rosterdomain.Board, error) {
	f.record("Drop")
	if f.DropFunc != nil {
		return f.DropFunc(ctx, runID, actor, drop)
	}
	return nil, nil
}

func (f *FakeService) Unassign(ctx context.Context, runID, actor, characterID string) (*rosterdomain.Board, error) {
	f.record("Unassign")
	if f.UnassignFunc != nil {
		return f.UnassignFunc(ctx, runID, actor, characterID)
	}
	return nil, nil
}

func (f *FakeService) Complete(ctx context.Context, runID, actor string) (*rosterdomain.Board, error) {
	f.record("Complete")
	if f.CompleteFunc != nil {
		return f.CompleteFunc(ctx, runID, actor)
	}
	return nil, nil
}

func (f *FakeService) Announce(ctx context.Context, runID, actor string, mention bool) error {
	f.record("Announce")
	if f.AnnounceFunc != nil {
		return f.AnnounceFunc(ctx, runID, actor, mention)
	}
	return nil
}

// ------------------------
// Fake Feed
// ------------------------

type FakeFeed struct {
	RecentFunc func(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error)
}

func (f *FakeFeed) Recent(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error) {
	if f.RecentFunc != nil {
		return f.RecentFunc(ctx, runID, limit)
	}
	return nil, nil
}

// ------------------------
// Fake Renderer
// ------------------------

type rendered struct {
	status   int
	name     string
	view     web.View
	fragment any
}

type FakeRenderer struct {
	calls []rendered
}

func (f *FakeRenderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, view web.View) {
	f.calls = append(f.calls, rendered{status: status, name: name, view: view})
	w.WriteHeader(status)
}

func (f *FakeRenderer) Fragment(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	f.calls = append(f.calls, rendered{status: status, name: name, fragment: data})
	w.WriteHeader(status)
}

func (f *FakeRenderer) CSRFToken(r *http.Request) string {
	return "token"
}

func (f *FakeRenderer) last() rendered {
	if len(f.calls) == 0 {
		return rendered{}
	}
	return f.calls[len(f.calls)-1]
}
