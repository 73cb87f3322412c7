package edenapi

import "context"

// SessionCookie is the cookie set by the API's OAuth callback.
const SessionCookie = "eden_session"

type sessionKey struct{}

// WithSession returns a context whose API calls carry the given session cookie value.
func WithSession(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, token)
}

// SessionFrom returns the session cookie value carried by ctx.
func SessionFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionKey{}).(string)
	return token, ok && token != ""
}
