package edenapi

import (
	"context"
	"net/http"
	"net/url"
)

// GetRoster returns the roster slots of a run.
func (c *Client) GetRoster(ctx context.Context, runID string) ([]RosterSlot, error) {
	return call[[]RosterSlot](ctx, c, request{method: http.MethodGet, path: runPath(runID) + "/roster", route: "roster.get"})
}

// AddRoster assigns a character to a role.
func (c *Client) AddRoster(ctx context.Context, runID string, in RosterInput) (RosterSlot, error) {
	return call[RosterSlot](ctx, c, request{method: http.MethodPost, path: runPath(runID) + "/roster", route: "roster.add", body: in})
}

// RemoveRoster frees the slot held by a character.
func (c *Client) RemoveRoster(ctx context.Context, runID, characterID string) error {
	path := runPath(runID) + "/roster/" + url.PathEscape(characterID)
	return exec(ctx, c, request{method: http.MethodDelete, path: path, route: "roster.remove"})
}
