package activitydb

import (
	"context"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
)

// Repository stores activity events.
type Repository interface {
	// Save stores an event. Saving an id twice keeps the first copy.
	Save(ctx context.Context, event activitydomain.Event) error

	// Recent returns up to limit events of runID, newest first.
	Recent(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error)
}
