package rundomain

import "errors"

var (
	ErrTitleTooShort         = errors.New("title must be longer than 2 characters")
	ErrInvalidDifficulty     = errors.New("invalid difficulty")
	ErrScheduleRequired      = errors.New("schedule is required")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidHour           = errors.New("hour must be 00-23")
	ErrInvalidMinute         = errors.New("minute must be 00, 15, 30 or 45")
	ErrUnrecognizedSchedule  = errors.New("schedule not recognized")
	ErrScheduleInPast        = errors.New("schedule must be in the future")
	ErrRosterChannelRequired = errors.New("roster channel id is required")
	ErrInvalidCapacity       = errors.New("capacity must be a non-negative number")
)

var formMessages = map[error]string{
	ErrTitleTooShort:         "Title must be longer than 2 characters.",
	ErrInvalidDifficulty:     "Pick a difficulty.",
	ErrScheduleRequired:      "Pick a date or describe when the run starts.",
	ErrInvalidDate:           "Date must look like 2025-03-14.",
	ErrInvalidHour:           "Hour must be between 00 and 23.",
	ErrInvalidMinute:         "Minute must be 00, 15, 30 or 45.",
	ErrUnrecognizedSchedule:  "Could not understand the schedule. Try \"next friday 8pm\".",
	ErrScheduleInPast:        "The run must start in the future.",
	ErrRosterChannelRequired: "Roster channel ID is required.",
	ErrInvalidCapacity:       "Capacities must be whole numbers.",
}

// FormMessage returns the toast copy for a validation error, or "" for other errors.
func FormMessage(err error) string {
	for target, msg := range formMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return ""
}
