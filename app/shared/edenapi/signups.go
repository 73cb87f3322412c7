package edenapi

import (
	"context"
	"net/http"
)

// ListSignups returns the signups of a run.
func (c *Client) ListSignups(ctx context.Context, runID string) ([]Signup, error) {
	return call[[]Signup](ctx, c, request{method: http.MethodGet, path: runPath(runID) + "/signups", route: "signups.list"})
}

// CreateSignup registers the session user for a run.
func (c *Client) CreateSignup(ctx context.Context, runID string, in SignupInput) (Signup, error) {
	return call[Signup](ctx, c, request{method: http.MethodPost, path: runPath(runID) + "/signup", route: "signups.create", body: in})
}

// CancelSignup withdraws the session user's signup for a run.
func (c *Client) CancelSignup(ctx context.Context, runID string) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: runPath(runID) + "/signup", route: "signups.cancel"})
}
