package rosterdomain

import (
	"maps"
	"net/url"
	"strings"

	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// Assignment is a character placed in a roster slot.
type Assignment struct {
	PlayerID    string
	PlayerName  string
	CharacterID string
	CharName    string
	Class       string
	ItemLevel   int
	Spec        string
	Logs        *int
}

// Player is one signup in the browser with the characters offered for the run.
type Player struct {
	UserID     string
	Name       string
	Type       types.SignupType
	Characters []edenapi.Character
}

// Board is a run's roster grid plus its signup browser.
// Slots holds one capacity-sized array per role; a nil entry is an empty slot.
type Board struct {
	Run        edenapi.Run
	Difficulty types.Difficulty
	Slots      map[types.Role][]*Assignment
	Players    []Player
	Completed  bool
}

// NewBoard lays out the run's current roster. Roster entries that do not fit
// their role's capacity are left off the grid.
func NewBoard(run edenapi.Run, difficulty types.Difficulty, roster []edenapi.RosterSlot, signups []edenapi.Signup) *Board {
	if !difficulty.IsValid() {
		difficulty = run.Difficulty
	}

	b := &Board{
		Run:        run,
		Difficulty: difficulty,
		Slots:      make(map[types.Role][]*Assignment, len(types.Roles)),
		Players:    make([]Player, 0, len(signups)),
		Completed:  run.Status == types.RunCompleted,
	}
	for _, role := range types.Roles {
		b.Slots[role] = make([]*Assignment, max(run.Capacity(role), 0))
	}

	for _, s := range signups {
		b.Players = append(b.Players, Player{
			UserID:     s.UserID,
			Name:       s.DisplayName(),
			Type:       s.Type,
			Characters: s.Characters,
		})
	}

	for _, slot := range roster {
		if b.IsAssigned(slot.CharacterID) {
			continue
		}
		slots, ok := b.Slots[slot.AssignedRole]
		if !ok {
			continue
		}
		i := firstFree(slots)
		if i < 0 {
			continue
		}
		a := b.assignmentFor(slot)
		slots[i] = &a
	}
	return b
}

func (b *Board) assignmentFor(slot edenapi.RosterSlot) Assignment {
	for _, p := range b.Players {
		for _, c := range p.Characters {
			if c.ID == slot.CharacterID {
				payload := PayloadFor(p, c)
				return payload.Assignment()
			}
		}
	}
	return Assignment{
		PlayerID:    slot.UserID,
		PlayerName:  slot.UserID,
		CharacterID: slot.CharacterID,
		CharName:    slot.CharacterID,
	}
}

func firstFree(slots []*Assignment) int {
	for i, a := range slots {
		if a == nil {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		Run:        b.Run,
		Difficulty: b.Difficulty,
		Slots:      make(map[types.Role][]*Assignment, len(b.Slots)),
		Players:    make([]Player, len(b.Players)),
		Completed:  b.Completed,
	}
	for role, slots := range b.Slots {
		copied := make([]*Assignment, len(slots))
		for i, a := range slots {
			if a != nil {
				v := *a
				copied[i] = &v
			}
		}
		c.Slots[role] = copied
	}
	for i, p := range b.Players {
		p.Characters = cloneCharacters(p.Characters)
		c.Players[i] = p
	}
	return c
}

func cloneCharacters(in []edenapi.Character) []edenapi.Character {
	if in == nil {
		return nil
	}
	out := make([]edenapi.Character, len(in))
	for i, ch := range in {
		if ch.Locks != nil {
			ch.Locks = maps.Clone(ch.Locks)
		}
		out[i] = ch
	}
	return out
}

// Find returns the role and slot index holding characterID.
func (b *Board) Find(characterID string) (types.Role, int, bool) {
	for _, role := range types.Roles {
		for i, a := range b.Slots[role] {
			if a != nil && a.CharacterID == characterID {
				return role, i, true
			}
		}
	}
	return "", 0, false
}

// IsAssigned reports whether characterID holds a slot.
func (b *Board) IsAssigned(characterID string) bool {
	_, _, ok := b.Find(characterID)
	return ok
}

// LockOf returns the character's lock status for the board's difficulty.
func (b *Board) LockOf(c edenapi.Character) types.LockStatus {
	return c.Lock(b.Difficulty).Status
}

// Draggable reports whether a browser card may be dragged onto the grid.
func (b *Board) Draggable(c edenapi.Character) bool {
	return !b.Completed && !b.IsAssigned(c.ID) && b.LockOf(c) != types.LockLocked
}

func (b *Board) character(id string) *edenapi.Character {
	for i := range b.Players {
		for j := range b.Players[i].Characters {
			if b.Players[i].Characters[j].ID == id {
				return &b.Players[i].Characters[j]
			}
		}
	}
	return nil
}

// setLock moves a character's lock to status. LOCKED is never downgraded.
func (b *Board) setLock(characterID string, status types.LockStatus) {
	c := b.character(characterID)
	if c == nil {
		return
	}
	current := c.Lock(b.Difficulty)
	if current.Status == types.LockLocked && status != types.LockLocked {
		return
	}
	if c.Locks == nil {
		c.Locks = make(map[string]edenapi.Lock, 1)
	}
	current.Status = status
	c.Locks[b.Difficulty.Key()] = current
}

// Assign places the payload's character in slot index of role. A negative index
// takes the first free slot. The character's lock turns PENDING unless LOCKED.
func (b *Board) Assign(role types.Role, index int, p DragPayload) (int, error) {
	if b.Completed {
		return 0, ErrRunCompleted
	}
	if !p.CanFill(role) {
		return 0, ErrRoleNotAllowed
	}
	if b.IsAssigned(p.CharacterID) {
		return 0, ErrAlreadyAssigned
	}

	slots := b.Slots[role]
	switch {
	case index < 0:
		index = firstFree(slots)
		if index < 0 {
			return 0, ErrRoleFull
		}
	case index >= len(slots):
		return 0, ErrSlotOutOfRange
	case slots[index] != nil:
		return 0, ErrSlotOccupied
	}

	if c := b.character(p.CharacterID); c != nil && b.LockOf(*c) == types.LockLocked {
		return 0, ErrCharacterLocked
	}

	a := p.Assignment()
	slots[index] = &a
	b.setLock(p.CharacterID, types.LockPending)
	return index, nil
}

// Unassign frees the slot held by characterID. Its lock returns to AVAILABLE unless LOCKED.
func (b *Board) Unassign(characterID string) (Assignment, types.Role, error) {
	if b.Completed {
		return Assignment{}, "", ErrRunCompleted
	}
	role, i, ok := b.Find(characterID)
	if !ok {
		return Assignment{}, "", ErrNotAssigned
	}
	a := *b.Slots[role][i]
	b.Slots[role][i] = nil
	b.setLock(characterID, types.LockAvailable)
	return a, role, nil
}

// MarkCompleted locks every assigned character for the board's difficulty.
func (b *Board) MarkCompleted() {
	for _, role := range types.Roles {
		for _, a := range b.Slots[role] {
			if a != nil {
				b.setLock(a.CharacterID, types.LockLocked)
			}
		}
	}
	b.Completed = true
	b.Run.Status = types.RunCompleted
}

// KeepCompletion carries a completed board's state onto a freshly loaded one.
// The backend may still report the run and its locks as before completion.
func (b *Board) KeepCompletion(previous *Board) {
	if previous == nil || !previous.Completed {
		return
	}
	if previous.Difficulty == b.Difficulty {
		b.MarkCompleted()
		return
	}
	b.Completed = true
	b.Run.Status = types.RunCompleted
}

// Column is one role's slots as the grid shows them.
type Column struct {
	Role     types.Role
	Slots    []*Assignment
	Filled   int
	Capacity int
}

// Columns returns the grid in roster role order.
func (b *Board) Columns() []Column {
	cols := make([]Column, 0, len(types.Roles))
	for _, role := range types.Roles {
		slots := b.Slots[role]
		filled := 0
		for _, a := range slots {
			if a != nil {
				filled++
			}
		}
		cols = append(cols, Column{Role: role, Slots: slots, Filled: filled, Capacity: len(slots)})
	}
	return cols
}

// Counts is the board header: assigned over total slots plus per-role fill.
type Counts struct {
	Assigned int
	Total    int
	Roles    []Column
}

// Counts summarizes the grid.
func (b *Board) Counts() Counts {
	cols := b.Columns()
	c := Counts{Roles: cols}
	for _, col := range cols {
		c.Assigned += col.Filled
		c.Total += col.Capacity
	}
	return c
}

// BrowserFilter narrows the signup browser.
type BrowserFilter struct {
	Role  types.Role
	Class string
}

// ParseBrowserFilter reads the role and class query keys. Unknown values are ignored.
func ParseBrowserFilter(q url.Values) BrowserFilter {
	var f BrowserFilter
	if role, ok := types.ParseRole(q.Get("role")); ok {
		f.Role = role
	}
	if class := strings.TrimSpace(q.Get("class")); types.IsClass(class) {
		f.Class = class
	}
	return f
}

// IsZero reports whether the filter keeps everything.
func (f BrowserFilter) IsZero() bool {
	return f.Role == "" && f.Class == ""
}

func (f BrowserFilter) keeps(c edenapi.Character) bool {
	if f.Class != "" && !strings.EqualFold(c.Class, f.Class) {
		return false
	}
	if f.Role != "" {
		for _, r := range c.Roles() {
			if r == f.Role {
				return true
			}
		}
		return false
	}
	return true
}

// Browser is the signup browser split into main and backup signups.
type Browser struct {
	Signed []Player
	Backup []Player
}

// Browse applies f to the signups. Declined players are hidden, and with an
// active filter so are players with no matching character.
func (b *Board) Browse(f BrowserFilter) Browser {
	var out Browser
	for _, p := range b.Players {
		if p.Type == types.SignupDecline {
			continue
		}
		if !f.IsZero() {
			kept := make([]edenapi.Character, 0, len(p.Characters))
			for _, c := range p.Characters {
				if f.keeps(c) {
					kept = append(kept, c)
				}
			}
			if len(kept) == 0 {
				continue
			}
			p.Characters = kept
		}
		if p.Type == types.SignupMain {
			out.Signed = append(out.Signed, p)
		} else {
			out.Backup = append(out.Backup, p)
		}
	}
	return out
}

// Query encodes the filter as URL query parameters.
func (f BrowserFilter) Query() url.Values {
	q := url.Values{}
	if f.Role != "" {
		q.Set("role", string(f.Role))
	}
	if f.Class != "" {
		q.Set("class", f.Class)
	}
	return q
}
