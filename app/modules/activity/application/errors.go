package activityservice

import "errors"

var (
	ErrInvalidEvent = errors.New("invalid activity event")
)
