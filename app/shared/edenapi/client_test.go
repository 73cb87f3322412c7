package edenapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edenhub/eden-web/app/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *Metrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	metrics := NewMetrics(prometheus.NewRegistry())

	return NewClient(Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()}, logger, tracer, metrics), metrics
}

func TestClient_ForwardsSessionCookie(t *testing.T) {
	var gotCookie, gotContentType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(SessionCookie); err == nil {
			gotCookie = c.Value
		}
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(AuthUser{UserID: "42", Username: "thrall", IsAdmin: true})
	})

	ctx := WithSession(context.Background(), "sess-1")
	user, err := client.Me(ctx)
	require.NoError(t, err)

	assert.Equal(t, "sess-1", gotCookie)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, AuthUser{UserID: "42", Username: "thrall", IsAdmin: true}, user)
}

func TestClient_ErrorShape(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "json message wins", status: http.StatusConflict, body: `{"message":"Character already rostered"}`, wantMessage: "Character already rostered"},
		{name: "empty message falls back", status: http.StatusBadRequest, body: `{"message":""}`, wantMessage: "API Error: 400"},
		{name: "non json body", status: http.StatusInternalServerError, body: "boom", wantMessage: "API Error: 500"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "", wantMessage: "API Error: 401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.ListCharacters(context.Background())
			require.Error(t, err)

			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_EmptyBodies(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		run, err := client.UpdateRunStatus(context.Background(), "r1", types.RunCompleted)
		require.NoError(t, err)
		assert.Equal(t, Run{}, run)
	})

	t.Run("unparseable", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		})
		stats, err := client.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Stats{}, stats)
	})
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: url}, nil, nil, nil)
	err := client.DeleteRun(context.Background(), "r1")
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.NotEmpty(t, err.Error())
}

func TestClient_RequestShapes(t *testing.T) {
	type seen struct {
		method string
		path   string
		body   map[string]any
	}

	tests := []struct {
		name string
		call func(c *Client) error
		want seen
	}{
		{
			name: "remove roster",
			call: func(c *Client) error { return c.RemoveRoster(context.Background(), "run 1", "c1") },
			want: seen{method: http.MethodDelete, path: "/api/runs/run 1/roster/c1"},
		},
		{
			name: "announce with mention",
			call: func(c *Client) error { return c.AnnounceRun(context.Background(), "r1", true) },
			want: seen{method: http.MethodPost, path: "/api/runs/r1/announce", body: map[string]any{"mention": true}},
		},
		{
			name: "cancel signup",
			call: func(c *Client) error { return c.CancelSignup(context.Background(), "r1") },
			want: seen{method: http.MethodDelete, path: "/api/runs/r1/signup"},
		},
		{
			name: "get run",
			call: func(c *Client) error {
				_, err := c.GetRun(context.Background(), "srv", "r1")
				return err
			},
			want: seen{method: http.MethodGet, path: "/api/runs/srv/r1"},
		},
		{
			name: "add roster",
			call: func(c *Client) error {
				_, err := c.AddRoster(context.Background(), "r1", RosterInput{UserID: "u1", CharacterID: "c1", AssignedRole: types.RoleTank})
				return err
			},
			want: seen{method: http.MethodPost, path: "/api/runs/r1/roster", body: map[string]any{
				"user_id": "u1", "character_id": "c1", "assigned_role": "Tank",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got seen
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				got.method = r.Method
				got.path = r.URL.Path
				raw, _ := io.ReadAll(r.Body)
				if len(raw) > 0 {
					_ = json.Unmarshal(raw, &got.body)
				}
				w.WriteHeader(http.StatusNoContent)
			})

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_RecordsMetrics(t *testing.T) {
	client, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetRoster(context.Background(), "r1")
	require.True(t, IsNotFound(err))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "roster.get", "404")))
}

func TestSpecs_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Specs
	}{
		{name: "array", in: `[{"spec":"Holy","role":"Healer","type":"main"}]`, want: Specs{{Spec: "Holy", Role: "Healer", Type: "main"}}},
		{name: "string encoded", in: `"[{\"spec\":\"Blood\",\"role\":\"Tank\"}]"`, want: Specs{{Spec: "Blood", Role: "Tank"}}},
		{name: "plain roles", in: `["Tank","DPS"]`, want: Specs{{Role: "Tank"}, {Role: "DPS"}}},
		{name: "null", in: `null`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Specs
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCharacter_LockAndRoles(t *testing.T) {
	c := Character{
		Specs: Specs{{Role: "DPS"}, {Role: "tank"}, {Role: "DPS"}, {Role: "bard"}},
		Locks: map[string]Lock{"heroic": {Status: types.LockLocked, SystemManaged: true}},
	}

	assert.Equal(t, []types.Role{types.RoleTank, types.RoleDPS}, c.Roles())
	assert.Equal(t, Lock{Status: types.LockAvailable}, c.Lock(types.DifficultyMythic))
	assert.Equal(t, Lock{Status: types.LockLocked, SystemManaged: true}, c.Lock(types.DifficultyHeroic))
}
