package rundomain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// Default per-role capacities of a new run.
const (
	DefaultTankCapacity   = 2
	DefaultHealerCapacity = 4
	DefaultDPSCapacity    = 14
)

// Filter narrows the admin run list.
type Filter struct {
	Search     string
	Difficulty types.Difficulty
	Status     types.RunStatus
}

// ParseFilter reads the list filters from the query. Unknown values mean "All".
func ParseFilter(q url.Values) Filter {
	f := Filter{Search: strings.TrimSpace(q.Get("q"))}
	if d, ok := types.ParseDifficulty(q.Get("difficulty")); ok {
		f.Difficulty = d
	}
	if s, ok := types.ParseRunStatus(q.Get("status")); ok {
		f.Status = s
	}
	return f
}

// Match reports whether run passes the filter. Search is a case-insensitive title substring.
func (f Filter) Match(run edenapi.Run) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(run.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Difficulty != "" && run.Difficulty != f.Difficulty {
		return false
	}
	if f.Status != "" && run.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the runs passing the filter, in order.
func (f Filter) Apply(runs []edenapi.Run) []edenapi.Run {
	out := make([]edenapi.Run, 0, len(runs))
	for _, r := range runs {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Query encodes the filter for pagination links.
func (f Filter) Query() string {
	q := url.Values{}
	if f.Search != "" {
		q.Set("q", f.Search)
	}
	if f.Difficulty != "" {
		q.Set("difficulty", string(f.Difficulty))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	return q.Encode()
}

// Stats are the cards above the admin run list.
type Stats struct {
	Active    int
	Pending   int
	Completed int
	Players   int
}

// ComputeStats takes active runs and players from the API counters and counts
// pending and completed runs locally.
func ComputeStats(runs []edenapi.Run, global edenapi.Stats) Stats {
	s := Stats{Active: global.ActiveRuns, Players: global.TotalPlayers}
	for _, r := range runs {
		switch r.Status {
		case types.RunPending:
			s.Pending++
		case types.RunCompleted:
			s.Completed++
		}
	}
	return s
}

// Form is the raw run create/edit form.
type Form struct {
	Title            string
	Difficulty       string
	Schedule         Schedule
	RosterChannelID  string
	DiscordChannelID string
	EmbedText        string
	TankCapacity     string
	HealerCapacity   string
	DPSCapacity      string
}

// NewForm is the blank create form.
func NewForm() Form {
	return Form{
		Difficulty:     string(types.DifficultyMythic),
		Schedule:       Schedule{Hour: "20", Minute: "00"},
		TankCapacity:   strconv.Itoa(DefaultTankCapacity),
		HealerCapacity: strconv.Itoa(DefaultHealerCapacity),
		DPSCapacity:    strconv.Itoa(DefaultDPSCapacity),
	}
}

// FormFromRun prefills the edit form.
func FormFromRun(run edenapi.Run, loc *time.Location) Form {
	return Form{
		Title:            run.Title,
		Difficulty:       string(run.Difficulty),
		Schedule:         ScheduleFrom(run.Scheduled(), loc),
		RosterChannelID:  run.RosterChannelID,
		DiscordChannelID: run.DiscordChannelID,
		EmbedText:        run.EmbedText,
		TankCapacity:     strconv.Itoa(run.TankCapacity),
		HealerCapacity:   strconv.Itoa(run.HealerCapacity),
		DPSCapacity:      strconv.Itoa(run.DPSCapacity),
	}
}

// Validated is a run form that passed validation.
type Validated struct {
	Title            string
	Difficulty       types.Difficulty
	ScheduledAt      time.Time
	RosterChannelID  string
	DiscordChannelID string
	EmbedText        string
	TankCapacity     int
	HealerCapacity   int
	DPSCapacity      int
}

// Validate checks the form. requireChannel is false for edits, where channels are not editable.
func (f Form) Validate(now time.Time, loc *time.Location, requireChannel bool) (Validated, error) {
	v := Validated{
		Title:            strings.TrimSpace(f.Title),
		RosterChannelID:  strings.TrimSpace(f.RosterChannelID),
		DiscordChannelID: strings.TrimSpace(f.DiscordChannelID),
		EmbedText:        strings.TrimSpace(f.EmbedText),
	}
	if len([]rune(v.Title)) <= 2 {
		return Validated{}, ErrTitleTooShort
	}

	d, ok := types.ParseDifficulty(f.Difficulty)
	if !ok {
		return Validated{}, fmt.Errorf("%w: %q", ErrInvalidDifficulty, f.Difficulty)
	}
	v.Difficulty = d

	at, err := f.Schedule.Resolve(now, loc)
	if err != nil {
		return Validated{}, err
	}
	v.ScheduledAt = at

	if requireChannel && v.RosterChannelID == "" {
		return Validated{}, ErrRosterChannelRequired
	}
	if v.DiscordChannelID == "" {
		v.DiscordChannelID = v.RosterChannelID
	}

	if v.TankCapacity, err = capacity(f.TankCapacity, DefaultTankCapacity); err != nil {
		return Validated{}, err
	}
	if v.HealerCapacity, err = capacity(f.HealerCapacity, DefaultHealerCapacity); err != nil {
		return Validated{}, err
	}
	if v.DPSCapacity, err = capacity(f.DPSCapacity, DefaultDPSCapacity); err != nil {
		return Validated{}, err
	}
	return v, nil
}

// capacity parses a capacity field; blank or zero falls back to def.
func capacity(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCapacity, raw)
	}
	if n == 0 {
		return def, nil
	}
	return n, nil
}

// Input is the create payload for serverID.
func (v Validated) Input(serverID string) edenapi.RunInput {
	return edenapi.RunInput{
		ServerID:         serverID,
		Title:            v.Title,
		Difficulty:       v.Difficulty,
		ScheduledAt:      v.ScheduledAt.UTC().Format(time.RFC3339),
		RosterChannelID:  v.RosterChannelID,
		DiscordChannelID: v.DiscordChannelID,
		EmbedText:        v.EmbedText,
		TankCapacity:     v.TankCapacity,
		HealerCapacity:   v.HealerCapacity,
		DPSCapacity:      v.DPSCapacity,
	}
}

// Update is the edit payload.
func (v Validated) Update() edenapi.RunUpdate {
	scheduled := v.ScheduledAt.UTC().Format(time.RFC3339)
	return edenapi.RunUpdate{
		Title:          &v.Title,
		Difficulty:     &v.Difficulty,
		ScheduledAt:    &scheduled,
		EmbedText:      &v.EmbedText,
		TankCapacity:   &v.TankCapacity,
		HealerCapacity: &v.HealerCapacity,
		DPSCapacity:    &v.DPSCapacity,
	}
}
