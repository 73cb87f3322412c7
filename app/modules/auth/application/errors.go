package authservice

import "errors"

var (
	// ErrNotSignedIn is returned when the API does not recognise the session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrMalformedUser is returned when the API answers without a user id.
	ErrMalformedUser = errors.New("malformed user returned by API")
)
