package edenapi

import (
	"context"
	"net/http"
)

// Stats returns the global player and run counters.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	return call[Stats](ctx, c, request{method: http.MethodGet, path: "/api/stats", route: "stats"})
}
