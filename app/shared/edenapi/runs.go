package edenapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edenhub/eden-web/app/types"
)

func runPath(runID string) string {
	return "/api/runs/" + url.PathEscape(runID)
}

// ListRuns returns every run of a Discord server.
func (c *Client) ListRuns(ctx context.Context, serverID string) ([]Run, error) {
	return call[[]Run](ctx, c, request{method: http.MethodGet, path: "/api/runs/" + url.PathEscape(serverID), route: "runs.list"})
}

// GetRun returns a single run of a Discord server.
func (c *Client) GetRun(ctx context.Context, serverID, runID string) (Run, error) {
	path := "/api/runs/" + url.PathEscape(serverID) + "/" + url.PathEscape(runID)
	return call[Run](ctx, c, request{method: http.MethodGet, path: path, route: "runs.get"})
}

// CreateRun schedules a new run.
func (c *Client) CreateRun(ctx context.Context, in RunInput) (Run, error) {
	return call[Run](ctx, c, request{method: http.MethodPost, path: "/api/runs", route: "runs.create", body: in})
}

// UpdateRun applies a partial update.
func (c *Client) UpdateRun(ctx context.Context, runID string, in RunUpdate) (Run, error) {
	return call[Run](ctx, c, request{method: http.MethodPatch, path: runPath(runID), route: "runs.update", body: in})
}

// DeleteRun removes a run.
func (c *Client) DeleteRun(ctx context.Context, runID string) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: runPath(runID), route: "runs.delete"})
}

// UpdateRunStatus moves a run to status.
func (c *Client) UpdateRunStatus(ctx context.Context, runID string, status types.RunStatus) (Run, error) {
	body := struct {
		Status types.RunStatus `json:"status"`
	}{Status: status}
	return call[Run](ctx, c, request{method: http.MethodPatch, path: runPath(runID) + "/status", route: "runs.status", body: body})
}

// AnnounceRun posts the run's roster to Discord, optionally mentioning every rostered player.
func (c *Client) AnnounceRun(ctx context.Context, runID string, mention bool) error {
	body := struct {
		Mention bool `json:"mention"`
	}{Mention: mention}
	return exec(ctx, c, request{method: http.MethodPost, path: runPath(runID) + "/announce", route: "runs.announce", body: body})
}
