package activityservice

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
)

// ------------------------
// Fake Bus
// ------------------------

type FakeBus struct {
	mu        sync.Mutex
	published []*message.Message

	PublishFunc   func(topic string, msgs ...*message.Message) error
	SubscribeFunc func(ctx context.Context, topic string) (<-chan *message.Message, error)
}

func (f *FakeBus) Published() []*message.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*message.Message(nil), f.published...)
}

func (f *FakeBus) Publish(topic string, msgs ...*message.Message) error {
	if f.PublishFunc != nil {
		return f.PublishFunc(topic, msgs...)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, msgs...)
	return nil
}

func (f *FakeBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if f.SubscribeFunc != nil {
		return f.SubscribeFunc(ctx, topic)
	}
	return make(chan *message.Message), nil
}

// ------------------------
// Fake Repository
// ------------------------

type FakeRepo struct {
	mu    sync.Mutex
	trace []string
	saved []activitydomain.Event

	SaveFunc   func(ctx context.Context, event activitydomain.Event) error
	RecentFunc func(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error)
}

func (f *FakeRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *FakeRepo) Saved() []activitydomain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]activitydomain.Event(nil), f.saved...)
}

func (f *FakeRepo) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeRepo) Save(ctx context.Context, event activitydomain.Event) error {
	f.record("Save")
	if f.SaveFunc != nil {
		if err := f.SaveFunc(ctx, event); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, event)
	return nil
}

func (f *FakeRepo) Recent(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error) {
	f.record("Recent")
	if f.RecentFunc != nil {
		return f.RecentFunc(ctx, runID, limit)
	}
	return nil, nil
}
