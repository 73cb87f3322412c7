package characterservice

import (
	"context"

	characterdomain "github.com/edenhub/eden-web/app/modules/character/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// Service manages the session user's characters.
type Service interface {
	List(ctx context.Context) ([]edenapi.Character, error)
	Get(ctx context.Context, id string) (*edenapi.Character, error)
	Create(ctx context.Context, form characterdomain.Form) (*edenapi.Character, error)
	Update(ctx context.Context, id string, form characterdomain.Form) (*edenapi.Character, error)
	Delete(ctx context.Context, id string) error

	// ToggleLock flips the character's lock for difficulty and returns the new status.
	ToggleLock(ctx context.Context, id string, difficulty types.Difficulty) (types.LockStatus, error)
}

// API is the part of the Eden API the character service calls.
type API interface {
	ListCharacters(ctx context.Context) ([]edenapi.Character, error)
	CreateCharacter(ctx context.Context, in edenapi.CharacterInput) (edenapi.Character, error)
	UpdateCharacter(ctx context.Context, id string, in edenapi.CharacterUpdate) (edenapi.Character, error)
	UpdateCharacterStatus(ctx context.Context, id string, in edenapi.CharacterStatusUpdate) (edenapi.Character, error)
	DeleteCharacter(ctx context.Context, id string) error
}
