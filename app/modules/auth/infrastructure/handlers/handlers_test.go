package authhandlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	authservice "github.com/edenhub/eden-web/app/modules/auth/application"
	authdomain "github.com/edenhub/eden-web/app/modules/auth/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/flash"
	"github.com/edenhub/eden-web/app/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestHandlers(svc *FakeService, renderer *FakeRenderer) *AuthHandlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewAuthHandlers(svc, renderer, logger, tracer, false)
}

func withSession(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: edenapi.SessionCookie, Value: "sess"})
	return r
}

func TestLoadUser(t *testing.T) {
	tests := []struct {
		name       string
		cookie     bool
		userFunc   func(ctx context.Context) (*authdomain.User, error)
		wantUser   bool
		wantErr    string
		wantCalled bool
	}{
		{name: "no cookie skips lookup", cookie: false},
		{
			name:       "resolved user",
			cookie:     true,
			wantUser:   true,
			wantCalled: true,
		},
		{
			name:   "unauthorized is not an error",
			cookie: true,
			userFunc: func(ctx context.Context) (*authdomain.User, error) {
				return nil, authservice.ErrNotSignedIn
			},
			wantCalled: true,
		},
		{
			name:   "other failure is kept",
			cookie: true,
			userFunc: func(ctx context.Context) (*authdomain.User, error) {
				return nil, &edenapi.Error{Status: 500, Message: "API Error: 500"}
			},
			wantErr:    "API Error: 500",
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{CurrentUserFunc: tt.userFunc}
			h := newTestHandlers(svc, &FakeRenderer{})

			var state authdomain.State
			var session string
			var viewer *web.Viewer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				state = authdomain.StateFrom(r.Context())
				session, _ = edenapi.SessionFrom(r.Context())
				viewer = web.ViewerFrom(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.cookie {
				req = withSession(req)
			}
			h.LoadUser(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantCalled, len(svc.Trace()) == 1)
			assert.Equal(t, tt.wantUser, state.User != nil)
			assert.Equal(t, tt.wantUser, viewer != nil)
			assert.Equal(t, tt.wantErr, state.Err)
			if tt.cookie {
				assert.Equal(t, "sess", session)
			}
		})
	}
}

func TestRequireUser(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("signed out restarts login", func(t *testing.T) {
		h := newTestHandlers(&FakeService{}, &FakeRenderer{})
		rec := httptest.NewRecorder()
		h.RequireUser(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	})

	t.Run("api failure renders error", func(t *testing.T) {
		renderer := &FakeRenderer{}
		h := newTestHandlers(&FakeService{}, renderer)
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req = req.WithContext(authdomain.WithState(req.Context(), authdomain.State{Err: "down"}))
		rec := httptest.NewRecorder()
		h.RequireUser(ok).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "error", renderer.last().name)
	})
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name   string
		user   *authdomain.User
		status int
	}{
		{name: "admin", user: &authdomain.User{ID: "1", IsAdmin: true}, status: http.StatusOK},
		{name: "player", user: &authdomain.User{ID: "2"}, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers(&FakeService{}, &FakeRenderer{})
			req := httptest.NewRequest(http.MethodGet, "/admin/runs", nil)
			req = req.WithContext(authdomain.WithState(req.Context(), authdomain.State{User: tt.user}))
			rec := httptest.NewRecorder()
			h.RequireAdmin(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandleLogin(t *testing.T) {
	h := newTestHandlers(&FakeService{}, &FakeRenderer{})
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://api.test/api/auth/login", rec.Header().Get("Location"))
}

func TestHandleLogout(t *testing.T) {
	t.Run("success clears session", func(t *testing.T) {
		svc := &FakeService{}
		h := newTestHandlers(svc, &FakeRenderer{})
		rec := httptest.NewRecorder()
		h.HandleLogout(rec, withSession(httptest.NewRequest(http.MethodPost, "/auth/logout", nil)))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		var cleared bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == edenapi.SessionCookie && c.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared)
	})

	t.Run("failure keeps session and flashes", func(t *testing.T) {
		svc := &FakeService{LogoutFunc: func(ctx context.Context) error { return errors.New("logout failed: boom") }}
		h := newTestHandlers(svc, &FakeRenderer{})
		req := withSession(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
		req = req.WithContext(authdomain.WithState(req.Context(), authdomain.State{User: &authdomain.User{ID: "1"}}))
		rec := httptest.NewRecorder()
		h.HandleLogout(rec, req)

		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		var flashed *http.Cookie
		for _, c := range rec.Result().Cookies() {
			require.NotEqual(t, edenapi.SessionCookie, c.Name)
			if c.Name == flash.CookieName {
				flashed = c
			}
		}
		require.NotNil(t, flashed)
	})
}

func TestHandleAuthError(t *testing.T) {
	renderer := &FakeRenderer{}
	h := newTestHandlers(&FakeService{}, renderer)

	rec := httptest.NewRecorder()
	h.HandleAuthError(rec, httptest.NewRequest(http.MethodGet, "/auth/error?error=access_denied&error_description=User%20cancelled", nil))

	page := renderer.last().view.Data.(ErrorPage)
	assert.Equal(t, "Access Denied", page.Title)
	assert.Equal(t, "User cancelled", page.Detail)

	h.HandleAuthError(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/auth/error?error=weird", nil))
	assert.Equal(t, "Login Error", renderer.last().view.Data.(ErrorPage).Title)
}

func TestHandleProfile_FailureRendersEmpty(t *testing.T) {
	renderer := &FakeRenderer{}
	svc := &FakeService{ProfileFunc: func(ctx context.Context) (*authservice.Profile, error) {
		return nil, errors.New("down")
	}}
	h := newTestHandlers(svc, renderer)

	h.HandleProfile(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/profile", nil))

	page := renderer.last()
	assert.Equal(t, "profile", page.name)
	require.NotNil(t, page.view.Notice)
	assert.Equal(t, flash.KindError, page.view.Notice.Kind)
	assert.NotNil(t, page.view.Data)
}
