package edenapi

import (
	"context"
	"net/http"
	"net/url"
)

func characterPath(id string) string {
	return "/api/characters/" + url.PathEscape(id)
}

// ListCharacters returns the session user's characters.
func (c *Client) ListCharacters(ctx context.Context) ([]Character, error) {
	return call[[]Character](ctx, c, request{method: http.MethodGet, path: "/api/characters", route: "characters.list"})
}

// CreateCharacter registers a new character.
func (c *Client) CreateCharacter(ctx context.Context, in CharacterInput) (Character, error) {
	return call[Character](ctx, c, request{method: http.MethodPost, path: "/api/characters", route: "characters.create", body: in})
}

// UpdateCharacter applies a partial update.
func (c *Client) UpdateCharacter(ctx context.Context, id string, in CharacterUpdate) (Character, error) {
	return call[Character](ctx, c, request{method: http.MethodPatch, path: characterPath(id), route: "characters.update", body: in})
}

// UpdateCharacterStatus sets the character's lock status for a difficulty.
func (c *Client) UpdateCharacterStatus(ctx context.Context, id string, in CharacterStatusUpdate) (Character, error) {
	return call[Character](ctx, c, request{method: http.MethodPatch, path: characterPath(id) + "/status", route: "characters.status", body: in})
}

// DeleteCharacter removes a character.
func (c *Client) DeleteCharacter(ctx context.Context, id string) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: characterPath(id), route: "characters.delete"})
}
