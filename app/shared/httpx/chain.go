package httpx

import "net/http"

// Chain holds the shared middleware modules attach to their route groups.
type Chain struct {
	// RateLimit throttles auth and mutation routes per IP.
	RateLimit func(http.Handler) http.Handler
	// CSRF rejects unsafe requests without a valid token.
	CSRF func(http.Handler) http.Handler
}

// Limited returns the middleware for rate-limited routes.
func (c Chain) Limited() []func(http.Handler) http.Handler {
	return compact(c.RateLimit)
}

// Protected returns the middleware for state-changing routes.
func (c Chain) Protected() []func(http.Handler) http.Handler {
	return compact(c.RateLimit, c.CSRF)
}

func compact(mws ...func(http.Handler) http.Handler) []func(http.Handler) http.Handler {
	out := make([]func(http.Handler) http.Handler, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			out = append(out, mw)
		}
	}
	return out
}
