package types

import "strings"

// Difficulty is the raid difficulty of a run.
type Difficulty string

const (
	DifficultyMythic Difficulty = "Mythic"
	DifficultyHeroic Difficulty = "Heroic"
	DifficultyNormal Difficulty = "Normal"
)

// Difficulties lists every difficulty in display order.
var Difficulties = []Difficulty{DifficultyMythic, DifficultyHeroic, DifficultyNormal}

// ParseDifficulty accepts any casing of a difficulty name or its one-letter key.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mythic", "m":
		return DifficultyMythic, true
	case "heroic", "h":
		return DifficultyHeroic, true
	case "normal", "n":
		return DifficultyNormal, true
	default:
		return "", false
	}
}

// IsValid checks if the difficulty is a known value.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyMythic, DifficultyHeroic, DifficultyNormal:
		return true
	default:
		return false
	}
}

// Key is the lowercase key used for per-difficulty lock maps.
func (d Difficulty) Key() string {
	return strings.ToLower(string(d))
}

// Short is the one-letter badge label.
func (d Difficulty) Short() string {
	if d == "" {
		return ""
	}
	return string(d)[:1]
}

func (d Difficulty) String() string {
	return string(d)
}

// Role is a roster role.
type Role string

const (
	RoleTank   Role = "Tank"
	RoleHealer Role = "Healer"
	RoleDPS    Role = "DPS"
)

// Roles lists every role in roster order.
var Roles = []Role{RoleTank, RoleHealer, RoleDPS}

// ParseRole accepts any casing of a role name.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tank":
		return RoleTank, true
	case "healer", "heal":
		return RoleHealer, true
	case "dps", "damage":
		return RoleDPS, true
	default:
		return "", false
	}
}

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTank, RoleHealer, RoleDPS:
		return true
	default:
		return false
	}
}

// Initial returns the role's first letter, used in compact role labels like (T/H).
func (r Role) Initial() string {
	if r == "" {
		return ""
	}
	return string(r)[:1]
}

func (r Role) String() string {
	return string(r)
}

// LockStatus is the per-difficulty lock state of a character.
type LockStatus string

const (
	LockAvailable LockStatus = "AVAILABLE"
	LockPending   LockStatus = "PENDING"
	LockLocked    LockStatus = "LOCKED"
)

// IsValid checks if the lock status is a known value.
func (s LockStatus) IsValid() bool {
	switch s {
	case LockAvailable, LockPending, LockLocked:
		return true
	default:
		return false
	}
}

// RunStatus is the lifecycle status of a run.
type RunStatus string

const (
	RunPending   RunStatus = "PENDING"
	RunActive    RunStatus = "ACTIVE"
	RunCompleted RunStatus = "COMPLETED"
)

// RunStatuses lists every run status in display order.
var RunStatuses = []RunStatus{RunPending, RunActive, RunCompleted}

// ParseRunStatus accepts any casing of a run status.
func ParseRunStatus(s string) (RunStatus, bool) {
	st := RunStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case RunPending, RunActive, RunCompleted:
		return st, true
	default:
		return "", false
	}
}

// Label is the capitalized display form, e.g. "Pending".
func (s RunStatus) Label() string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(string(s))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// SignupType is a player's registration of intent for a run.
type SignupType string

const (
	SignupMain    SignupType = "MAIN"
	SignupBench   SignupType = "BENCH"
	SignupAlt     SignupType = "ALT"
	SignupDecline SignupType = "DECLINE"
)

// SignupTypes lists every signup type in display order.
var SignupTypes = []SignupType{SignupMain, SignupBench, SignupAlt, SignupDecline}

// ParseSignupType accepts any casing of a signup type.
func ParseSignupType(s string) (SignupType, bool) {
	st := SignupType(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case SignupMain, SignupBench, SignupAlt, SignupDecline:
		return st, true
	default:
		return "", false
	}
}
