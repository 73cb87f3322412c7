package signupservice

import (
	"context"

	signupdomain "github.com/edenhub/eden-web/app/modules/signup/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// Service is the player's view of runs and signups.
type Service interface {
	// MyRuns lists the server's runs with the player's signup on each.
	MyRuns(ctx context.Context, userID string) (*signupdomain.MyRuns, error)

	// SignUp registers the session user for a run.
	SignUp(ctx context.Context, runID string, signupType types.SignupType) error

	// Cancel withdraws the session user's signup.
	Cancel(ctx context.Context, runID string) error
}

// API is the part of the Eden API the signup service calls.
type API interface {
	ListRuns(ctx context.Context, serverID string) ([]edenapi.Run, error)
	ListSignups(ctx context.Context, runID string) ([]edenapi.Signup, error)
	CreateSignup(ctx context.Context, runID string, in edenapi.SignupInput) (edenapi.Signup, error)
	CancelSignup(ctx context.Context, runID string) error
}
