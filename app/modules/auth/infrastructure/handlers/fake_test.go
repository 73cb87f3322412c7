package authhandlers

import (
	"context"
	"net/http"

	authservice "github.com/edenhub/eden-web/app/modules/auth/application"
	authdomain "github.com/edenhub/eden-web/app/modules/auth/domain"
	"github.com/edenhub/eden-web/app/web"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	CurrentUserFunc func(ctx context.Context) (*authdomain.User, error)
	LogoutFunc      func(ctx context.Context) error
	ProfileFunc     func(ctx context.Context) (*authservice.Profile, error)
}

func (f *FakeService) Trace() []string {
	return f.trace
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) CurrentUser(ctx context.Context) (*authdomain.User, error) {
	f.record("CurrentUser")
	if f.CurrentUserFunc != nil {
		return f.CurrentUserFunc(ctx)
	}
	return &authdomain.User{ID: "u1", Username: "tester"}, nil
}

func (f *FakeService) LoginURL() string {
	f.record("LoginURL")
	return "https://api.test/api/auth/login"
}

func (f *FakeService) Logout(ctx context.Context) error {
	f.record("Logout")
	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx)
	}
	return nil
}

func (f *FakeService) Profile(ctx context.Context) (*authservice.Profile, error) {
	f.record("Profile")
	if f.ProfileFunc != nil {
		return f.ProfileFunc(ctx)
	}
	return &authservice.Profile{}, nil
}

// ------------------------
// Fake Renderer
// ------------------------

type renderedPage struct {
	status int
	name   string
	view   web.View
}

type FakeRenderer struct {
	pages []renderedPage
}

func (f *FakeRenderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, view web.View) {
	f.pages = append(f.pages, renderedPage{status: status, name: name, view: view})
	w.WriteHeader(status)
}

func (f *FakeRenderer) last() renderedPage {
	if len(f.pages) == 0 {
		return renderedPage{}
	}
	return f.pages[len(f.pages)-1]
}
