// Package eventbus wires the watermill publisher and subscriber the app's events travel on.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nkeys"
)

const (
	BackendNATS      = "nats"
	BackendGoChannel = "gochannel"
)

// EventBus publishes and subscribes to topics.
type EventBus interface {
	Publish(topic string, msgs ...*message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Backend() string
	Close() error
}

// eventBus implements the EventBus interface.
type eventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	backend    string
	logger     *slog.Logger
}

// NewEventBus connects to NATS core when natsURL is set and falls back to an
// in-process channel otherwise. extra is appended to the NATS connection options.
func NewEventBus(natsURL string, logger *slog.Logger, extra ...nc.Option) (EventBus, error) {
	watermillLogger := watermill.NewSlogLogger(logger)

	if natsURL == "" {
		ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermillLogger)
		logger.Info("Event bus using in-process channel")
		return &eventBus{
			publisher:  ch,
			subscriber: ch,
			backend:    BackendGoChannel,
			logger:     logger,
		}, nil
	}

	marshaler := &nats.NATSMarshaler{}
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Name("eden-web"),
	}
	options = append(options, extra...)

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         natsURL,
			Marshaler:   marshaler,
			NatsOptions: options,
			JetStream:   nats.JetStreamConfig{Disabled: true},
		},
		watermillLogger,
	)
	if err != nil {
		logger.Error("Failed to create Watermill publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaler,
			NatsOptions: options,
			JetStream:   nats.JetStreamConfig{Disabled: true},
		},
		watermillLogger,
	)
	if err != nil {
		publisher.Close()
		logger.Error("Failed to create Watermill subscriber", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill subscriber: %w", err)
	}

	logger.Info("Event bus connected to NATS", slog.String("url", natsURL))
	return &eventBus{
		publisher:  publisher,
		subscriber: subscriber,
		backend:    BackendNATS,
		logger:     logger,
	}, nil
}

func (eb *eventBus) Publish(topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}
	}
	if err := eb.publisher.Publish(topic, msgs...); err != nil {
		eb.logger.Error("Failed to publish message",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	eb.logger.Debug("Message published", slog.String("topic", topic), slog.Int("count", len(msgs)))
	return nil
}

func (eb *eventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	messages, err := eb.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	eb.logger.Info("Subscription started", slog.String("topic", topic), slog.String("backend", eb.backend))
	return messages, nil
}

func (eb *eventBus) Backend() string {
	return eb.backend
}

// Close shuts down the publisher and, for NATS, the subscriber.
func (eb *eventBus) Close() error {
	errPub := eb.publisher.Close()
	if eb.backend == BackendGoChannel {
		return errPub
	}
	return errors.Join(errPub, eb.subscriber.Close())
}

// NKeyOption authenticates the NATS connection with a user nkey seed.
func NKeyOption(seed string) (nc.Option, error) {
	kp, err := nkeys.FromSeed([]byte(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to parse nkey seed: %w", err)
	}
	pub, err := kp.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to derive nkey public key: %w", err)
	}
	return nc.Nkey(pub, kp.Sign), nil
}
