package authservice

import (
	"context"

	"github.com/edenhub/eden-web/app/shared/edenapi"
)

// ------------------------
// Fake API
// ------------------------

type FakeAPI struct {
	trace []string

	MeFunc             func(ctx context.Context) (edenapi.AuthUser, error)
	LogoutFunc         func(ctx context.Context) error
	ProfileFunc        func(ctx context.Context) (edenapi.UserProfile, error)
	ListCharactersFunc func(ctx context.Context) ([]edenapi.Character, error)
}

func (f *FakeAPI) Trace() []string {
	return f.trace
}

func (f *FakeAPI) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAPI) Me(ctx context.Context) (edenapi.AuthUser, error) {
	f.record("Me")
	if f.MeFunc != nil {
		return f.MeFunc(ctx)
	}
	return edenapi.AuthUser{UserID: "u1", Username: "tester"}, nil
}

func (f *FakeAPI) LoginURL() string {
	f.record("LoginURL")
	return "https://api.test/api/auth/login"
}

func (f *FakeAPI) Logout(ctx context.Context) error {
	f.record("Logout")
	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx)
	}
	return nil
}

func (f *FakeAPI) Profile(ctx context.Context) (edenapi.UserProfile, error) {
	f.record("Profile")
	if f.ProfileFunc != nil {
		return f.ProfileFunc(ctx)
	}
	return edenapi.UserProfile{}, nil
}

func (f *FakeAPI) ListCharacters(ctx context.Context) ([]edenapi.Character, error) {
	f.record("ListCharacters")
	if f.ListCharactersFunc != nil {
		return f.ListCharactersFunc(ctx)
	}
	return nil, nil
}
