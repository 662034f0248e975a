package event

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/mapstorm/internal/logging"
)

// Subscription identifies a registered handler.
type Subscription struct {
	id    uint64
	topic Topic
}

// Topic returns the subscribed topic.
func (s Subscription) Topic() Topic {
	return s.topic
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Stats reports bus activity.
type Stats struct {
	Published uint64
	Delivered uint64
	Panics    uint64
}

// Bus is a synchronous topic-based event bus.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Topic][]subscriber
	nextID uint64

	logger *slog.Logger

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used to report handler panics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		subs:   make(map[Topic][]subscriber),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers handler for topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) (Subscription, error) {
	if handler == nil {
		return Subscription{}, ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[topic] = append(b.subs[topic], subscriber{id: b.nextID, handler: handler})
	return Subscription{id: b.nextID, topic: topic}, nil
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.topic]
	for i, s := range subs {
		if s.id == sub.id {
			b.subs[sub.topic] = append(subs[:i:i], subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers payload to every handler of topic and of TopicAll,
// in subscription order.
func (b *Bus) Publish(topic Topic, payload any) {
	b.published.Add(1)

	b.mu.RLock()
	var targets []subscriber
	if topic == TopicAll {
		targets = append(targets, b.subs[TopicAll]...)
	} else {
		targets = mergeByID(b.subs[topic], b.subs[TopicAll])
	}
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload, Time: time.Now()}
	for _, s := range targets {
		b.deliver(s, ev)
	}
}

// mergeByID merges two subscriber lists that are each ordered by id.
func mergeByID(a, c []subscriber) []subscriber {
	out := make([]subscriber, 0, len(a)+len(c))
	for len(a) > 0 && len(c) > 0 {
		if a[0].id < c[0].id {
			out = append(out, a[0])
			a = a[1:]
		} else {
			out = append(out, c[0])
			c = c[1:]
		}
	}
	out = append(out, a...)
	return append(out, c...)
}

// deliver runs one handler, recovering from panics.
func (b *Bus) deliver(s subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			b.logger.Error("event handler panicked", "topic", string(ev.Topic), "panic", r)
		}
	}()
	s.handler(ev)
	b.delivered.Add(1)
}

// Stats returns delivery counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
		Panics:    b.panics.Load(),
	}
}
