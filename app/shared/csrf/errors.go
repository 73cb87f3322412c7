package csrf

import "errors"

var (
	// ErrInvalidToken is returned when the token is malformed, forged or expired.
	ErrInvalidToken = errors.New("invalid csrf token")

	// ErrSessionMismatch is returned when the token was issued for another session.
	ErrSessionMismatch = errors.New("csrf token does not match session")

	// ErrMissingToken is returned when a mutating request carries no token.
	ErrMissingToken = errors.New("missing csrf token")
)
