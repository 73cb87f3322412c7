package csrf

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_IssueValidate(t *testing.T) {
	p := NewProvider("secret", time.Minute)

	token, err := p.Issue("sess-1")
	require.NoError(t, err)

	assert.NoError(t, p.Validate(token, "sess-1"))
	assert.ErrorIs(t, p.Validate(token, "sess-2"), ErrSessionMismatch)
	assert.ErrorIs(t, p.Validate("", "sess-1"), ErrMissingToken)
	assert.ErrorIs(t, p.Validate("not-a-jwt", "sess-1"), ErrInvalidToken)

	other := NewProvider("other-secret", time.Minute)
	assert.ErrorIs(t, other.Validate(token, "sess-1"), ErrInvalidToken)
}

func TestProvider_Expired(t *testing.T) {
	p := NewProvider("secret", time.Minute).(*provider)
	token, err := p.Issue("sess")
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.ErrorIs(t, p.Validate(token, "sess"), ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	p := NewProvider("secret", time.Minute)
	token, err := p.Issue("sess")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Middleware(p, "eden_session", nil)(next)

	tests := []struct {
		name   string
		req    func() *http.Request
		status int
	}{
		{
			name:   "get passes",
			req:    func() *http.Request { return httptest.NewRequest(http.MethodGet, "/", nil) },
			status: http.StatusNoContent,
		},
		{
			name: "header token",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/", nil)
				r.AddCookie(&http.Cookie{Name: "eden_session", Value: "sess"})
				r.Header.Set(HeaderName, token)
				return r
			},
			status: http.StatusNoContent,
		},
		{
			name: "form token",
			req: func() *http.Request {
				form := url.Values{FormField: {token}}
				r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				r.AddCookie(&http.Cookie{Name: "eden_session", Value: "sess"})
				return r
			},
			status: http.StatusNoContent,
		},
		{
			name: "missing token",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/", nil)
				r.AddCookie(&http.Cookie{Name: "eden_session", Value: "sess"})
				return r
			},
			status: http.StatusForbidden,
		},
		{
			name: "other session",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/", nil)
				r.AddCookie(&http.Cookie{Name: "eden_session", Value: "stolen"})
				r.Header.Set(HeaderName, token)
				return r
			},
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.req())
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
