package authdomain

import (
	"context"
	"strings"
)

// DiscordCDN is where Discord serves user avatars.
const DiscordCDN = "https://cdn.discordapp.com/avatars"

// User is the signed-in player as resolved from the session.
type User struct {
	ID        string
	Username  string
	AvatarURL string
	IsAdmin   bool
}

// AvatarURL resolves a Discord avatar reference. Absolute URLs are kept as is;
// a bare avatar hash becomes a CDN URL; empty stays empty.
func AvatarURL(userID, avatar string) string {
	avatar = strings.TrimSpace(avatar)
	switch {
	case avatar == "":
		return ""
	case strings.HasPrefix(avatar, "http://"), strings.HasPrefix(avatar, "https://"):
		return avatar
	default:
		return DiscordCDN + "/" + userID + "/" + avatar + ".png"
	}
}

// State is the per-request auth outcome.
// User is nil when signed out; Err is a displayable message when the lookup failed for another reason.
type State struct {
	User *User
	Err  string
}

type stateKey struct{}

// WithState stores the auth outcome in ctx.
func WithState(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// StateFrom returns the auth outcome stored in ctx.
func StateFrom(ctx context.Context) State {
	s, _ := ctx.Value(stateKey{}).(State)
	return s
}

// UserFrom returns the signed-in user, or nil.
func UserFrom(ctx context.Context) *User {
	return StateFrom(ctx).User
}
