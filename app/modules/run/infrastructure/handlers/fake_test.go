package runhandlers

import (
	"context"
	"net/http"

	runservice "github.com/edenhub/eden-web/app/modules/run/application"
	rundomain "github.com/edenhub/eden-web/app/modules/run/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/web"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	ListFunc   func(ctx context.Context, filter rundomain.Filter, page int) (*runservice.Listing, error)
	GetFunc    func(ctx context.Context, runID string) (*edenapi.Run, error)
	CreateFunc func(ctx context.Context, form rundomain.Form) (*edenapi.Run, error)
	UpdateFunc func(ctx context.Context, runID string, form rundomain.Form) (*edenapi.Run, error)
	DeleteFunc func(ctx context.Context, runID string) error
}

func (f *FakeService) Trace() []string {
	return f.trace
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) List(ctx context.Context, filter rundomain.Filter, page int) (*runservice.Listing, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, filter, page)
	}
	return &runservice.Listing{Filter: filter}, nil
}

func (f *FakeService) Get(ctx context.Context, runID string) (*edenapi.Run, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, runID)
	}
	return &edenapi.Run{ID: runID}, nil
}

func (f *FakeService) Create(ctx context.Context, form rundomain.Form) (*edenapi.Run, error) {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, form)
	}
	return &edenapi.Run{ID: "new"}, nil
}

func (f *FakeService) Update(ctx context.Context, runID string, form rundomain.Form) (*edenapi.Run, error) {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, runID, form)
	}
	return &edenapi.Run{ID: runID}, nil
}

func (f *FakeService) Delete(ctx context.Context, runID string) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, runID)
	}
	return nil
}

// ------------------------
// Fake Renderer
// ------------------------

type rendered struct {
	status int
	name   string
	view   web.View
}

type FakeRenderer struct {
	calls []rendered
}

func (f *FakeRenderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, view web.View) {
	f.calls = append(f.calls, rendered{status: status, name: name, view: view})
	w.WriteHeader(status)
}

func (f *FakeRenderer) last() rendered {
	if len(f.calls) == 0 {
		return rendered{}
	}
	return f.calls[len(f.calls)-1]
}
