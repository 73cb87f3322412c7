package authservice

import (
	"context"

	authdomain "github.com/edenhub/eden-web/app/modules/auth/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
)

// Service resolves and ends browser sessions.
type Service interface {
	// CurrentUser returns the user bound to the session in ctx.
	CurrentUser(ctx context.Context) (*authdomain.User, error)

	// LoginURL is the external OAuth start.
	LoginURL() string

	// Logout ends the session on the API side.
	Logout(ctx context.Context) error

	// Profile returns the profile page data of the session user.
	Profile(ctx context.Context) (*Profile, error)
}

// API is the part of the Eden API the auth service calls.
type API interface {
	Me(ctx context.Context) (edenapi.AuthUser, error)
	LoginURL() string
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (edenapi.UserProfile, error)
	ListCharacters(ctx context.Context) ([]edenapi.Character, error)
}

// Profile is the account summary with the user's characters.
type Profile struct {
	Account    edenapi.UserProfile
	Characters []edenapi.Character
	// CharactersErr is set when only the character list failed to load.
	CharactersErr string
}
