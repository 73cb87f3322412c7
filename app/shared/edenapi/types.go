package edenapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/edenhub/eden-web/app/types"
)

// AuthUser is the "who am I" payload.
type AuthUser struct {
	UserID string `json:"userId"`
	// ID is an alternate user id some API versions send; it wins for avatar URLs.
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// UserProfile is the account summary shown on the profile page.
type UserProfile struct {
	User struct {
		DisplayName string `json:"displayName"`
		PayoutName  string `json:"payoutName"`
		Wallet      string `json:"wallet"`
		JoinDate    string `json:"joinDate"`
	} `json:"user"`
	Finance struct {
		CurrentBalance float64 `json:"currentBalance"`
		PendingEscrow  float64 `json:"pendingEscrow"`
		IsFrozen       bool    `json:"isFrozen"`
	} `json:"finance"`
	Stats struct {
		TotalRuns int `json:"totalRuns"`
	} `json:"stats"`
	Aliases []string `json:"aliases"`
}

// CharacterSpec is one (spec, role) pair of a character.
type CharacterSpec struct {
	Spec string `json:"spec"`
	Role string `json:"role"`
	Type string `json:"type,omitempty"`
}

// Specs decodes from a JSON array, a JSON string holding an array, or a list of plain role names.
type Specs []CharacterSpec

func (s *Specs) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*s = nil
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		if strings.TrimSpace(encoded) == "" {
			*s = nil
			return nil
		}
		return s.UnmarshalJSON([]byte(encoded))
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Specs, 0, len(raw))
	for _, item := range raw {
		var role string
		if json.Unmarshal(item, &role) == nil {
			out = append(out, CharacterSpec{Role: role})
			continue
		}
		var spec CharacterSpec
		if err := json.Unmarshal(item, &spec); err != nil {
			return err
		}
		out = append(out, spec)
	}
	*s = out
	return nil
}

// Lock is the lock state of a character for one difficulty.
type Lock struct {
	Status        types.LockStatus `json:"status"`
	SystemManaged bool             `json:"system_managed,omitempty"`
}

// Character is a player's raid character.
type Character struct {
	ID        string          `json:"id"`
	Name      string          `json:"char_name"`
	Class     string          `json:"char_class"`
	ItemLevel int             `json:"ilevel"`
	Specs     Specs           `json:"specs"`
	Logs      *int            `json:"wcl_logs,omitempty"`
	Status    string          `json:"status,omitempty"`
	Locks     map[string]Lock `json:"locks,omitempty"`
}

// Lock returns the character's lock for d. Missing entries are AVAILABLE.
func (c Character) Lock(d types.Difficulty) Lock {
	if l, ok := c.Locks[d.Key()]; ok && l.Status.IsValid() {
		return l
	}
	return Lock{Status: types.LockAvailable}
}

// Roles returns the distinct roles the character's specs can fill, in roster order.
func (c Character) Roles() []types.Role {
	seen := make(map[types.Role]bool, len(types.Roles))
	for _, s := range c.Specs {
		if r, ok := types.ParseRole(s.Role); ok {
			seen[r] = true
		}
	}
	roles := make([]types.Role, 0, len(seen))
	for _, r := range types.Roles {
		if seen[r] {
			roles = append(roles, r)
		}
	}
	return roles
}

// CharacterInput is the create payload for a character.
type CharacterInput struct {
	Name      string          `json:"char_name"`
	Class     string          `json:"char_class"`
	ItemLevel int             `json:"ilevel"`
	Specs     []CharacterSpec `json:"specs"`
}

// CharacterUpdate is a partial character update; nil fields are not sent.
type CharacterUpdate struct {
	Name      *string         `json:"char_name,omitempty"`
	Class     *string         `json:"char_class,omitempty"`
	ItemLevel *int            `json:"ilevel,omitempty"`
	Specs     []CharacterSpec `json:"specs,omitempty"`
}

// CharacterStatusUpdate changes a character's per-difficulty lock.
type CharacterStatusUpdate struct {
	Status     types.LockStatus `json:"status"`
	Difficulty string           `json:"difficulty,omitempty"`
}

// Run is a scheduled raid event.
type Run struct {
	ID               string           `json:"id"`
	ServerID         string           `json:"server_id"`
	Title            string           `json:"title"`
	Difficulty       types.Difficulty `json:"difficulty"`
	ScheduledAt      string           `json:"scheduled_at"`
	RosterChannelID  string           `json:"roster_channel_id"`
	DiscordChannelID string           `json:"discord_channel_id"`
	EmbedText        string           `json:"embed_text,omitempty"`
	TankCapacity     int              `json:"tank_capacity"`
	HealerCapacity   int              `json:"healer_capacity"`
	DPSCapacity      int              `json:"dps_capacity"`
	Status           types.RunStatus  `json:"status"`
}

// Scheduled parses ScheduledAt. The zero time is returned for missing or malformed values.
func (r Run) Scheduled() time.Time {
	t, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Capacity returns the slot count configured for role.
func (r Run) Capacity(role types.Role) int {
	switch role {
	case types.RoleTank:
		return r.TankCapacity
	case types.RoleHealer:
		return r.HealerCapacity
	case types.RoleDPS:
		return r.DPSCapacity
	default:
		return 0
	}
}

// RunInput is the create payload for a run.
type RunInput struct {
	ServerID         string           `json:"server_id"`
	Title            string           `json:"title"`
	Difficulty       types.Difficulty `json:"difficulty"`
	ScheduledAt      string           `json:"scheduled_at"`
	RosterChannelID  string           `json:"roster_channel_id"`
	DiscordChannelID string           `json:"discord_channel_id"`
	EmbedText        string           `json:"embed_text,omitempty"`
	TankCapacity     int              `json:"tank_capacity"`
	HealerCapacity   int              `json:"healer_capacity"`
	DPSCapacity      int              `json:"dps_capacity"`
}

// RunUpdate is a partial run update; nil fields are not sent.
type RunUpdate struct {
	Title          *string           `json:"title,omitempty"`
	Difficulty     *types.Difficulty `json:"difficulty,omitempty"`
	ScheduledAt    *string           `json:"scheduled_at,omitempty"`
	EmbedText      *string           `json:"embed_text,omitempty"`
	TankCapacity   *int              `json:"tank_capacity,omitempty"`
	HealerCapacity *int              `json:"healer_capacity,omitempty"`
	DPSCapacity    *int              `json:"dps_capacity,omitempty"`
}

// Signup links a user to a run. Characters is only present when the API enriches the listing.
type Signup struct {
	ID         string           `json:"id"`
	RunID      string           `json:"run_id"`
	UserID     string           `json:"user_id"`
	Username   string           `json:"username,omitempty"`
	Type       types.SignupType `json:"signup_type"`
	CreatedAt  string           `json:"created_at"`
	Characters []Character      `json:"characters,omitempty"`
}

// DisplayName falls back to the user id when no username was returned.
func (s Signup) DisplayName() string {
	if s.Username != "" {
		return s.Username
	}
	return s.UserID
}

// SignupInput is the signup create payload.
type SignupInput struct {
	Type types.SignupType `json:"signup_type"`
}

// RosterSlot is one roster assignment.
type RosterSlot struct {
	RunID        string     `json:"run_id,omitempty"`
	UserID       string     `json:"user_id"`
	CharacterID  string     `json:"character_id"`
	AssignedRole types.Role `json:"assigned_role"`
}

// RosterInput is the roster add payload.
type RosterInput struct {
	UserID       string     `json:"user_id"`
	CharacterID  string     `json:"character_id"`
	AssignedRole types.Role `json:"assigned_role"`
}

// Stats are the global counters.
type Stats struct {
	TotalPlayers int `json:"total_players"`
	ActiveRuns   int `json:"active_runs"`
}
