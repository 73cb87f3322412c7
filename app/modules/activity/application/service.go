package activityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	activitydb "github.com/edenhub/eden-web/app/modules/activity/infrastructure/repositories"
	"github.com/edenhub/eden-web/app/shared/clock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	bus    Bus
	repo   activitydb.Repository
	clock  clock.Clock
	logger *slog.Logger
	tracer trace.Tracer
}

// NewService creates a new activity service.
func NewService(bus Bus, repo activitydb.Repository, clk clock.Clock, logger *slog.Logger, tracer trace.Tracer) Service {
	return &service{
		bus:    bus,
		repo:   repo,
		clock:  clk,
		logger: logger,
		tracer: tracer,
	}
}

func (s *service) Record(ctx context.Context, runID, actor string, kind activitydomain.Kind, detail string) error {
	ctx, span := s.tracer.Start(ctx, "ActivityService.Record", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.String("kind", string(kind)),
	))
	defer span.End()

	if runID == "" || !kind.IsValid() {
		return ErrInvalidEvent
	}

	event := activitydomain.NewEvent(runID, actor, kind, detail, s.clock.Now())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode activity event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("run_id", runID)
	msg.Metadata.Set("kind", string(kind))

	if err := s.bus.Publish(activitydomain.Topic, msg); err != nil {
		return fmt.Errorf("failed to publish activity event: %w", err)
	}
	return nil
}

func (s *service) Recent(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error) {
	ctx, span := s.tracer.Start(ctx, "ActivityService.Recent", trace.WithAttributes(
		attribute.String("run_id", runID),
	))
	defer span.End()

	if limit <= 0 {
		limit = activitydomain.RecentLimit
	}
	events, err := s.repo.Recent(ctx, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	return events, nil
}

func (s *service) Consume(ctx context.Context) error {
	messages, err := s.bus.Subscribe(ctx, activitydomain.Topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", activitydomain.Topic, err)
	}

	s.logger.InfoContext(ctx, "Activity consumer started", slog.String("topic", activitydomain.Topic))
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			s.handle(msg)
		}
	}
}

func (s *service) handle(msg *message.Message) {
	ctx, span := s.tracer.Start(msg.Context(), "ActivityService.handle", trace.WithAttributes(
		attribute.String("message_id", msg.UUID),
	))
	defer span.End()

	var event activitydomain.Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil || event.RunID == "" {
		s.logger.WarnContext(ctx, "Dropping malformed activity event",
			slog.String("message_id", msg.UUID),
		)
		msg.Ack()
		return
	}
	if event.ID == "" {
		event.ID = watermill.NewUUID()
	}

	if err := s.repo.Save(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store activity event",
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()),
		)
		msg.Nack()
		return
	}
	msg.Ack()
}
