package activitydb

import (
	"time"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	"github.com/uptrace/bun"
)

// ActivityEvent is the stored form of an activity event.
type ActivityEvent struct {
	bun.BaseModel `bun:"table:activity_events,alias:ae"`
	ID            string    `bun:"id,pk,type:uuid"`
	RunID         string    `bun:"run_id,notnull,type:varchar(64)"`
	Actor         string    `bun:"actor,notnull"`
	Kind          string    `bun:"kind,notnull,type:varchar(32)"`
	Detail        string    `bun:"detail,notnull,default:''"`
	At            time.Time `bun:"at,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toDBModel(e activitydomain.Event) *ActivityEvent {
	return &ActivityEvent{
		ID:     e.ID,
		RunID:  e.RunID,
		Actor:  e.Actor,
		Kind:   string(e.Kind),
		Detail: e.Detail,
		At:     e.At,
	}
}

func toDomain(m ActivityEvent) activitydomain.Event {
	return activitydomain.Event{
		ID:     m.ID,
		RunID:  m.RunID,
		Actor:  m.Actor,
		Kind:   activitydomain.Kind(m.Kind),
		Detail: m.Detail,
		At:     m.At.UTC(),
	}
}
