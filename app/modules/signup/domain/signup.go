package signupdomain

import (
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// Entry is one run on the player's dashboard with the player's own signup, if any.
type Entry struct {
	Run    edenapi.Run
	Signup *edenapi.Signup
	// SignupErr is set when the run's signups could not be loaded.
	SignupErr string
}

// SignupType returns the player's signup type, or "" when not signed up.
func (e Entry) SignupType() types.SignupType {
	if e.Signup == nil {
		return ""
	}
	return e.Signup.Type
}

// Open reports whether the run still takes signups.
func (e Entry) Open() bool {
	return e.Run.Status != types.RunCompleted
}

// Counts are the run totals shown above the list.
type Counts struct {
	Upcoming  int
	Active    int
	Completed int
}

// Count tallies runs by status. Upcoming runs are the pending ones.
func Count(runs []edenapi.Run) Counts {
	var c Counts
	for _, r := range runs {
		switch r.Status {
		case types.RunPending:
			c.Upcoming++
		case types.RunActive:
			c.Active++
		case types.RunCompleted:
			c.Completed++
		}
	}
	return c
}

// FindSignup returns the signup of userID, or nil.
func FindSignup(signups []edenapi.Signup, userID string) *edenapi.Signup {
	for i := range signups {
		if signups[i].UserID == userID {
			return &signups[i]
		}
	}
	return nil
}

// MyRuns is the data of the dashboard's runs tab.
type MyRuns struct {
	Entries []Entry
	Counts  Counts
}
