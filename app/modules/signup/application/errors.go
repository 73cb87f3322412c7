package signupservice

import "errors"

var (
	ErrInvalidSignupType = errors.New("invalid signup type")
	ErrMissingRun        = errors.New("run id is required")
)
