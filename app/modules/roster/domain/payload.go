package rosterdomain

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// DragPayload is what the browser carries from a signup card to a roster slot.
type DragPayload struct {
	PlayerID    string       `json:"playerId"`
	PlayerName  string       `json:"playerName"`
	CharacterID string       `json:"characterId"`
	CharName    string       `json:"charName"`
	Class       string       `json:"class"`
	ItemLevel   int          `json:"ilevel"`
	Spec        string       `json:"spec"`
	Logs        *int         `json:"logs,omitempty"`
	Roles       []types.Role `json:"roles"`
}

// ParsePayload decodes a drag payload. Player and character ids are required.
func ParsePayload(raw string) (DragPayload, error) {
	var p DragPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &p); err != nil {
		return DragPayload{}, ErrInvalidPayload
	}
	if p.PlayerID == "" || p.CharacterID == "" {
		return DragPayload{}, ErrInvalidPayload
	}
	return p, nil
}

// CanFill reports whether role is one of the payload's roles.
func (p DragPayload) CanFill(role types.Role) bool {
	return role.IsValid() && slices.Contains(p.Roles, role)
}

// Assignment converts the payload into the slot content for role.
func (p DragPayload) Assignment() Assignment {
	return Assignment{
		PlayerID:    p.PlayerID,
		PlayerName:  p.PlayerName,
		CharacterID: p.CharacterID,
		CharName:    p.CharName,
		Class:       p.Class,
		ItemLevel:   p.ItemLevel,
		Spec:        p.Spec,
		Logs:        p.Logs,
	}
}

// PayloadFor builds the drag payload of a player's character.
func PayloadFor(p Player, c edenapi.Character) DragPayload {
	spec := ""
	if len(c.Specs) > 0 {
		spec = c.Specs[0].Spec
		if spec == "" {
			spec = c.Specs[0].Role
		}
	}
	return DragPayload{
		PlayerID:    p.UserID,
		PlayerName:  p.Name,
		CharacterID: c.ID,
		CharName:    c.Name,
		Class:       c.Class,
		ItemLevel:   c.ItemLevel,
		Spec:        spec,
		Logs:        c.Logs,
		Roles:       c.Roles(),
	}
}

// Payload builds the drag payload of a browser card.
func (b *Board) Payload(p Player, c edenapi.Character) DragPayload {
	return PayloadFor(p, c)
}
