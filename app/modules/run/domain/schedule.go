package rundomain

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"
)

const dateLayout = "2006-01-02"

// Hours are the hour options of the schedule picker.
var Hours = func() []string {
	out := make([]string, 24)
	for i := range out {
		out[i] = fmt.Sprintf("%02d", i)
	}
	return out
}()

// Minutes are the minute options of the schedule picker.
var Minutes = []string{"00", "15", "30", "45"}

var compactTime = regexp.MustCompile(`(\d{1,2})(\d{2})(am|pm)`)

// Schedule is the schedule part of the run form. Natural wins over the picker fields.
type Schedule struct {
	Date    string
	Hour    string
	Minute  string
	Natural string
}

// Resolve turns the schedule into an instant in loc. Natural-language input must land in the future.
func (s Schedule) Resolve(now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if natural := strings.TrimSpace(s.Natural); natural != "" {
		return parseNatural(natural, now.In(loc))
	}

	date := strings.TrimSpace(s.Date)
	if date == "" {
		return time.Time{}, ErrScheduleRequired
	}
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	hour := strings.TrimSpace(s.Hour)
	if hour == "" {
		hour = "20"
	}
	if !slices.Contains(Hours, hour) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidHour, hour)
	}
	minute := strings.TrimSpace(s.Minute)
	if minute == "" {
		minute = "00"
	}
	if !slices.Contains(Minutes, minute) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMinute, minute)
	}

	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), nil
}

func parseNatural(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(input)
	input = compactTime.ReplaceAllString(input, "$1:$2 $3")

	w := when.New(nil)
	w.Add(en.All...)

	r, err := w.Parse(input, now)
	if err != nil || r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedSchedule, input)
	}

	at := r.Time.In(now.Location()).Truncate(time.Minute)
	if at.Before(now.Truncate(time.Minute)) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrScheduleInPast, at.Format(time.RFC3339))
	}
	return at, nil
}

// ScheduleFrom splits an instant into picker fields in loc, snapping minutes down to the quarter hour.
func ScheduleFrom(t time.Time, loc *time.Location) Schedule {
	if t.IsZero() {
		return Schedule{Hour: "20", Minute: "00"}
	}
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return Schedule{
		Date:   t.Format(dateLayout),
		Hour:   fmt.Sprintf("%02d", t.Hour()),
		Minute: fmt.Sprintf("%02d", t.Minute()/15*15),
	}
}
