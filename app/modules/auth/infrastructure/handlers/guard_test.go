package authhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		path         string
		hasSession   bool
		wantTarget   string
		wantRedirect bool
	}{
		{path: "/dashboard", hasSession: false, wantTarget: "/login", wantRedirect: true},
		{path: "/dashboard/characters/new", hasSession: false, wantTarget: "/login", wantRedirect: true},
		{path: "/profile", hasSession: false, wantTarget: "/login", wantRedirect: true},
		{path: "/admin/runs/7", hasSession: false, wantTarget: "/login", wantRedirect: true},
		{path: "/login", hasSession: true, wantTarget: "/dashboard", wantRedirect: true},
		{path: "/login", hasSession: false},
		{path: "/dashboard", hasSession: true},
		{path: "/", hasSession: false},
		{path: "/login/help", hasSession: true},
		{path: "/auth/error", hasSession: false},
	}

	for _, tt := range tests {
		name := tt.path
		if tt.hasSession {
			name += " with session"
		}
		t.Run(name, func(t *testing.T) {
			target, redirect := Decide(tt.path, tt.hasSession)
			assert.Equal(t, tt.wantRedirect, redirect)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestGuard(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := Guard(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: edenapi.SessionCookie, Value: "abc"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: edenapi.SessionCookie, Value: ""})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "/login", rec.Header().Get("Location"), "empty cookie counts as no session")
}

func TestHasSession_PresenceOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	assert.False(t, HasSession(req))

	req.AddCookie(&http.Cookie{Name: edenapi.SessionCookie, Value: ""})
	assert.True(t, HasSession(req))

	rec := httptest.NewRecorder()
	Guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
