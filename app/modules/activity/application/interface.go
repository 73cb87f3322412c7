package activityservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
)

// Service records and reads run activity.
type Service interface {
	// Record publishes an event for the subscriber to store.
	Record(ctx context.Context, runID, actor string, kind activitydomain.Kind, detail string) error

	// Recent returns the newest events of a run, newest first.
	Recent(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error)

	// Consume stores published events until ctx is done.
	Consume(ctx context.Context) error
}

// Bus is the slice of the event bus the service needs.
type Bus interface {
	Publish(topic string, msgs ...*message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}
