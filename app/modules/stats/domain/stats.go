package statsdomain

import (
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
)

// Bar is one labelled value of the stats chart.
type Bar struct {
	Label string
	Value int
}

// Breakdown counts the server's runs by status next to the global counters.
type Breakdown struct {
	Pending    int
	Active     int
	Completed  int
	ActiveRuns int
	Players    int
}

// Count builds a breakdown from the run list and the global stats.
func Count(runs []edenapi.Run, global edenapi.Stats) Breakdown {
	b := Breakdown{ActiveRuns: global.ActiveRuns, Players: global.TotalPlayers}
	for _, r := range runs {
		switch r.Status {
		case types.RunPending:
			b.Pending++
		case types.RunActive:
			b.Active++
		case types.RunCompleted:
			b.Completed++
		}
	}
	return b
}

// Bars returns the chart bars in display order.
func (b Breakdown) Bars() []Bar {
	return []Bar{
		{Label: types.RunPending.Label(), Value: b.Pending},
		{Label: types.RunActive.Label(), Value: b.Active},
		{Label: types.RunCompleted.Label(), Value: b.Completed},
		{Label: "Active runs", Value: b.ActiveRuns},
		{Label: "Players", Value: b.Players},
	}
}

// Empty reports whether every bar is zero.
func (b Breakdown) Empty() bool {
	for _, bar := range b.Bars() {
		if bar.Value > 0 {
			return false
		}
	}
	return true
}
