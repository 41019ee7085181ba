package transport

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"cryptochat/internal/crypto"
	"cryptochat/internal/domain"
)

// Bus is an in-memory Transport keyed by recipient identity.
type Bus struct {
	mu     sync.Mutex
	topics map[domain.Identity]*topic
	nextID uint64

	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64

	log *logrus.Logger
}

// topic is the inbox for one recipient identity.
type topic struct {
	subs     []*Subscription
	queue    []domain.Envelope
	draining bool
}

// Stats is a snapshot of bus counters.
type Stats struct {
	Published uint64 // envelopes accepted by Publish
	Delivered uint64 // successful handler invocations
	Dropped   uint64 // envelopes with no subscriber
	Failed    uint64 // handler invocations that returned an error
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used for delivery events.
func WithLogger(l *logrus.Logger) Option {
	return func(b *Bus) { b.log = l }
}

// NewBus returns a Bus with no subscriptions.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		topics: make(map[domain.Identity]*topic),
		log:    logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Subscribe registers handler for envelopes addressed to identity. Several
// subscriptions under the same identity each receive every envelope.
func (b *Bus) Subscribe(identity domain.Identity, handler domain.Handler) domain.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	s := &Subscription{bus: b, id: b.nextID, identity: identity, handler: handler}
	t := b.topics[identity]
	if t == nil {
		t = &topic{}
		b.topics[identity] = t
	}
	t.subs = append(t.subs, s)

	b.log.WithFields(logrus.Fields{
		"function":     "Subscribe",
		"package":      "transport",
		"identity":     identity,
		"subscription": s.id,
		"listeners":    len(t.subs),
	}).Debug("Subscribed")
	return s
}

// Publish delivers env to every handler subscribed under env.To. It returns
// ctx.Err() if ctx is already done and nil otherwise; unsubscribed
// recipients and handler failures are not errors.
//
// When no other goroutine is delivering to env.To, the handlers have run by
// the time Publish returns. Otherwise env is queued and Publish returns at
// once; the goroutine already delivering hands it over, in order, before its
// own Publish returns. That goroutine may therefore run handlers for
// envelopes other senders published. Handlers publishing from inside a
// handler take the queued path.
func (b *Bus) Publish(ctx context.Context, env domain.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.published.Add(1)

	fields := logrus.Fields{
		"function":   "Publish",
		"package":    "transport",
		"from":       env.From,
		"to":         env.To,
		"ciphertext": crypto.KeyPreview(env.Ciphertext),
		"size":       len(env.Ciphertext),
	}

	b.mu.Lock()
	t := b.topics[env.To]
	if t == nil || len(t.subs) == 0 {
		b.mu.Unlock()
		b.dropped.Add(1)
		b.log.WithFields(fields).Debug("No subscriber, envelope dropped")
		return nil
	}
	t.queue = append(t.queue, env)
	if t.draining {
		b.mu.Unlock()
		b.log.WithFields(fields).Debug("Envelope queued behind active delivery")
		return nil
	}
	t.draining = true
	b.mu.Unlock()

	b.log.WithFields(fields).Debug("Delivering envelope")
	b.drain(ctx, env.To, t)
	return nil
}

// drain delivers queued envelopes for one topic until its queue is empty.
// Only the goroutine that set t.draining calls it.
func (b *Bus) drain(ctx context.Context, identity domain.Identity, t *topic) {
	for {
		b.mu.Lock()
		if len(t.queue) == 0 {
			t.draining = false
			b.pruneLocked(identity, t)
			b.mu.Unlock()
			return
		}
		env := t.queue[0]
		t.queue[0] = domain.Envelope{}
		t.queue = t.queue[1:]
		subs := append([]*Subscription(nil), t.subs...)
		b.mu.Unlock()

		for _, s := range subs {
			if s.cancelled.Load() {
				continue
			}
			// Each handler gets its own copy of the ciphertext.
			in := env
			in.Ciphertext = bytes.Clone(env.Ciphertext)
			if err := s.handler(ctx, in); err != nil {
				b.failed.Add(1)
				b.log.WithFields(logrus.Fields{
					"function":     "drain",
					"package":      "transport",
					"from":         env.From,
					"to":           env.To,
					"subscription": s.id,
					"error":        err.Error(),
				}).Warn("Handler rejected envelope")
				continue
			}
			b.delivered.Add(1)
		}
	}
}

// pruneLocked removes an idle topic with no subscribers. b.mu must be held.
func (b *Bus) pruneLocked(identity domain.Identity, t *topic) {
	if len(t.subs) == 0 && len(t.queue) == 0 && !t.draining && b.topics[identity] == t {
		delete(b.topics, identity)
	}
}

func (b *Bus) unsubscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topics[s.identity]
	if t == nil {
		return
	}
	for i, cur := range t.subs {
		if cur == s {
			t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
			break
		}
	}
	b.pruneLocked(s.identity, t)

	b.log.WithFields(logrus.Fields{
		"function":     "unsubscribe",
		"package":      "transport",
		"identity":     s.identity,
		"subscription": s.id,
	}).Debug("Subscription cancelled")
}

// Listeners returns the number of live subscriptions under identity.
func (b *Bus) Listeners(identity domain.Identity) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t := b.topics[identity]; t != nil {
		return len(t.subs)
	}
	return 0
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
		Dropped:   b.dropped.Load(),
		Failed:    b.failed.Load(),
	}
}

// Subscription is a live registration returned by Bus.Subscribe.
type Subscription struct {
	bus       *Bus
	id        uint64
	identity  domain.Identity
	handler   domain.Handler
	cancelled atomic.Bool
}

// Identity returns the identity the subscription listens under.
func (s *Subscription) Identity() domain.Identity { return s.identity }

// Cancel stops delivery to the subscription. Envelopes already being
// delivered to other handlers are unaffected. Cancel is idempotent.
func (s *Subscription) Cancel() {
	if s.cancelled.Swap(true) {
		return
	}
	s.bus.unsubscribe(s)
}

// Compile-time assertions.
var (
	_ domain.Transport    = (*Bus)(nil)
	_ domain.Subscription = (*Subscription)(nil)
)
