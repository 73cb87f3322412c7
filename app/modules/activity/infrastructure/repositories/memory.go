package activitydb

import (
	"context"
	"sync"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
)

// Memory keeps the newest events of each run in process.
type Memory struct {
	mu     sync.RWMutex
	perRun int
	runs   map[string][]activitydomain.Event
	seen   map[string]struct{}
}

// NewMemory creates an in-memory repository holding perRun events per run.
func NewMemory(perRun int) *Memory {
	if perRun <= 0 {
		perRun = activitydomain.RecentLimit
	}
	return &Memory{
		perRun: perRun,
		runs:   make(map[string][]activitydomain.Event),
		seen:   make(map[string]struct{}),
	}
}

func (m *Memory) Save(_ context.Context, event activitydomain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.seen[event.ID]; dup {
		return nil
	}
	m.seen[event.ID] = struct{}{}

	events := append(m.runs[event.RunID], event)
	if len(events) > m.perRun {
		for _, dropped := range events[:len(events)-m.perRun] {
			delete(m.seen, dropped.ID)
		}
		events = append([]activitydomain.Event(nil), events[len(events)-m.perRun:]...)
	}
	m.runs[event.RunID] = events
	return nil
}

func (m *Memory) Recent(_ context.Context, runID string, limit int) ([]activitydomain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := m.runs[runID]
	if limit <= 0 || limit > len(events) {
		limit = len(events)
	}
	out := make([]activitydomain.Event, 0, limit)
	for i := len(events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, events[i])
	}
	return out, nil
}
