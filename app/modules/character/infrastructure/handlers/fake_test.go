package characterhandlers

import (
	"context"
	"net/http"

	characterdomain "github.com/edenhub/eden-web/app/modules/character/domain"
	signupdomain "github.com/edenhub/eden-web/app/modules/signup/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
	"github.com/edenhub/eden-web/app/web"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	ListFunc       func(ctx context.Context) ([]edenapi.Character, error)
	GetFunc        func(ctx context.Context, id string) (*edenapi.Character, error)
	CreateFunc     func(ctx context.Context, form characterdomain.Form) (*edenapi.Character, error)
	UpdateFunc     func(ctx context.Context, id string, form characterdomain.Form) (*edenapi.Character, error)
	DeleteFunc     func(ctx context.Context, id string) error
	ToggleLockFunc func(ctx context.Context, id string, difficulty types.Difficulty) (types.LockStatus, error)
}

func (f *FakeService) Trace() []string {
	return f.trace
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) List(ctx context.Context) ([]edenapi.Character, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakeService) Get(ctx context.Context, id string) (*edenapi.Character, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return &edenapi.Character{ID: id}, nil
}

func (f *FakeService) Create(ctx context.Context, form characterdomain.Form) (*edenapi.Character, error) {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, form)
	}
	return &edenapi.Character{ID: "new"}, nil
}

func (f *FakeService) Update(ctx context.Context, id string, form characterdomain.Form) (*edenapi.Character, error) {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, form)
	}
	return &edenapi.Character{ID: id}, nil
}

func (f *FakeService) Delete(ctx context.Context, id string) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) ToggleLock(ctx context.Context, id string, difficulty types.Difficulty) (types.LockStatus, error) {
	f.record("ToggleLock")
	if f.ToggleLockFunc != nil {
		return f.ToggleLockFunc(ctx, id, difficulty)
	}
	return types.LockLocked, nil
}

// ------------------------
// Fake Runs
// ------------------------

type FakeRuns struct {
	MyRunsFunc func(ctx context.Context, userID string) (*signupdomain.MyRuns, error)
}

func (f *FakeRuns) MyRuns(ctx context.Context, userID string) (*signupdomain.MyRuns, error) {
	if f.MyRunsFunc != nil {
		return f.MyRunsFunc(ctx, userID)
	}
	return &signupdomain.MyRuns{}, nil
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

func (f *FakeRenderer) last() rendered {
	if len(f.calls) == 0 {
		return rendered{}
	}
	return f.calls[len(f.calls)-1]
}
