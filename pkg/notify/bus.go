package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one transient banner notification.
type Message struct {
	ID   string
	Text string
	At   time.Time
}

// EventKind discriminates banner lifecycle events.
type EventKind int

const (
	// EventShown is emitted when a message is published.
	EventShown EventKind = iota
	// EventDismissed is emitted when the current message goes away,
	// whether manually or by timeout.
	EventDismissed
)

// Event is what subscribers receive: a lifecycle kind plus the message it
// concerns.
type Event struct {
	Kind    EventKind
	Message Message
}

type subscriber struct {
	ch chan Event
}

// Bus is a fire-and-forget channel by which any deep component can surface
// a denial (or any transient notice) without holding a reference to the UI
// shell. It holds at most one message: a new Publish supersedes whatever
// message and auto-dismiss timer are in flight. Deliberately not a queue.
//
// All methods are safe for concurrent use.
type Bus struct {
	mu      sync.Mutex
	current *Message
	timer   *time.Timer
	subs    map[*subscriber]struct{}
	closed  bool
	config  Config
}

// Option is a functional option for configuring the Bus.
type Option func(*Bus)

// WithConfig sets custom banner configuration.
func WithConfig(cfg Config) Option {
	return func(b *Bus) {
		b.config = cfg
	}
}

// NewBus creates a notification bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		subs:   make(map[*subscriber]struct{}),
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.config.BufferSize < 1 {
		b.config.BufferSize = 1
	}
	if b.config.DismissAfter <= 0 {
		b.config.DismissAfter = DefaultConfig().DismissAfter
	}

	return b
}

// Publish replaces the current message with a new one and restarts the
// auto-dismiss timer. Returns the published message; on a closed bus the
// call is a no-op returning a zero Message.
func (b *Bus) Publish(text string) Message {
	msg := Message{
		ID:   uuid.New().String(),
		Text: text,
		At:   time.Now(),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return Message{}
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.current = &msg
	b.timer = time.AfterFunc(b.config.DismissAfter, func() {
		b.dismiss(msg.ID)
	})
	b.mu.Unlock()

	b.emit(Event{Kind: EventShown, Message: msg})
	return msg
}

// Dismiss removes the current message before its timer fires. Dismissing
// when nothing is shown is a no-op.
func (b *Bus) Dismiss() {
	b.mu.Lock()
	if b.closed || b.current == nil {
		b.mu.Unlock()
		return
	}
	id := b.current.ID
	b.mu.Unlock()

	b.dismiss(id)
}

// dismiss clears the current message only while it is still the one the
// caller saw; a superseding Publish wins the race.
func (b *Bus) dismiss(id string) {
	b.mu.Lock()
	if b.closed || b.current == nil || b.current.ID != id {
		b.mu.Unlock()
		return
	}

	msg := *b.current
	b.current = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	b.emit(Event{Kind: EventDismissed, Message: msg})
}

// Current returns the message on display, if any.
func (b *Bus) Current() (Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return Message{}, false
	}
	return *b.current, true
}

// Subscribe returns a channel of banner lifecycle events. The subscription
// is cleaned up when ctx is cancelled or the bus is closed. Sends are
// non-blocking: subscribers that fall behind lose events rather than
// stalling publishers.
func (b *Bus) Subscribe(ctx context.Context) <-chan Event {
	sub := &subscriber{ch: make(chan Event, b.config.BufferSize)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub.ch
}

// Close shuts the bus down: the pending timer is stopped and every
// subscriber channel is closed. Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.current = nil

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	for sub := range b.subs {
		close(sub.ch)
	}
	clear(b.subs)
}

func (b *Bus) emit(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for sub := range b.subs {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (b *Bus) unsubscribe(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}
