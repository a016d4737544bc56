package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/grantkit/pkg/notify"
)

func shortConfig() notify.Config {
	return notify.Config{DismissAfter: 40 * time.Millisecond, BufferSize: 8}
}

func collect(ch <-chan notify.Event, n int, timeout time.Duration) []notify.Event {
	events := make([]notify.Event, 0, n)
	deadline := time.After(timeout)
	for len(events) < n {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-deadline:
			return events
		}
	}
	return events
}

func TestBus_PublishAndAutoDismiss(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus(notify.WithConfig(shortConfig()))
	defer bus.Close()

	events := bus.Subscribe(context.Background())

	msg := bus.Publish("acesso negado")
	require.NotEmpty(t, msg.ID)

	current, ok := bus.Current()
	require.True(t, ok)
	assert.Equal(t, "acesso negado", current.Text)

	got := collect(events, 2, time.Second)
	require.Len(t, got, 2)
	assert.Equal(t, notify.EventShown, got[0].Kind)
	assert.Equal(t, notify.EventDismissed, got[1].Kind)
	assert.Equal(t, msg.ID, got[1].Message.ID)

	_, ok = bus.Current()
	assert.False(t, ok, "auto-dismiss must clear the banner")
}

func TestBus_LastWriteWins(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus(notify.WithConfig(shortConfig()))
	defer bus.Close()

	events := bus.Subscribe(context.Background())

	first := bus.Publish("first")
	second := bus.Publish("second")

	current, ok := bus.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID, "a new publish supersedes the one in flight")

	// Only the superseding message ever dismisses: the first message's
	// timer was cancelled, so exactly one EventDismissed arrives.
	got := collect(events, 3, time.Second)
	require.Len(t, got, 3)
	assert.Equal(t, notify.EventShown, got[0].Kind)
	assert.Equal(t, first.ID, got[0].Message.ID)
	assert.Equal(t, notify.EventShown, got[1].Kind)
	assert.Equal(t, second.ID, got[1].Message.ID)
	assert.Equal(t, notify.EventDismissed, got[2].Kind)
	assert.Equal(t, second.ID, got[2].Message.ID)

	select {
	case ev := <-events:
		t.Fatalf("unexpected extra event: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_ManualDismiss(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus(notify.WithConfig(notify.Config{DismissAfter: time.Hour, BufferSize: 8}))
	defer bus.Close()

	events := bus.Subscribe(context.Background())

	msg := bus.Publish("banner")
	bus.Dismiss()

	_, ok := bus.Current()
	assert.False(t, ok)

	got := collect(events, 2, time.Second)
	require.Len(t, got, 2)
	assert.Equal(t, notify.EventDismissed, got[1].Kind)
	assert.Equal(t, msg.ID, got[1].Message.ID)

	// Dismissing an empty banner is a no-op.
	assert.NotPanics(t, bus.Dismiss)
}

func TestBus_ZeroConfigKeepsBannerUp(t *testing.T) {
	t.Parallel()

	// A zero-valued Config must fall back to the defaults instead of
	// auto-dismissing every message immediately.
	bus := notify.NewBus(notify.WithConfig(notify.Config{}))
	defer bus.Close()

	msg := bus.Publish("still here")
	require.NotEmpty(t, msg.ID)

	time.Sleep(60 * time.Millisecond)

	current, ok := bus.Current()
	require.True(t, ok)
	assert.Equal(t, msg.ID, current.ID)
}

func TestBus_SubscriberContextCancellation(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus(notify.WithConfig(shortConfig()))
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events := bus.Subscribe(ctx)
	cancel()

	// Channel closes once the cancellation is observed.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("subscriber channel not closed after context cancellation")
		}
	}
}

func TestBus_Close(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus(notify.WithConfig(shortConfig()))
	events := bus.Subscribe(context.Background())

	bus.Publish("going away")
	bus.Close()
	bus.Close() // idempotent

	_, ok := bus.Current()
	assert.False(t, ok)

	msg := bus.Publish("after close")
	assert.Empty(t, msg.ID, "publish on a closed bus is a no-op")

	// Drain until close.
	for range events {
	}
}
