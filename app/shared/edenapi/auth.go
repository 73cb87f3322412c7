package edenapi

import (
	"context"
	"net/http"
)

// Me returns the user bound to the session in ctx.
func (c *Client) Me(ctx context.Context) (AuthUser, error) {
	return call[AuthUser](ctx, c, request{method: http.MethodGet, path: "/api/auth/me", route: "auth.me"})
}

// LoginURL is the API's OAuth start URL; browsers are redirected there.
func (c *Client) LoginURL() string {
	return c.baseURL + "/api/auth/login"
}

// Logout ends the session on the API side.
func (c *Client) Logout(ctx context.Context) error {
	return exec(ctx, c, request{method: http.MethodGet, path: "/api/auth/logout", route: "auth.logout"})
}

// Profile returns the account summary of the session user.
func (c *Client) Profile(ctx context.Context) (UserProfile, error) {
	return call[UserProfile](ctx, c, request{method: http.MethodGet, path: "/api/profile", route: "profile"})
}
