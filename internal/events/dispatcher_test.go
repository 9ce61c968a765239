package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hotel-service/internal/events"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventReservationCreated, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	event := events.Event{
		ID:        "evt-1",
		Type:      events.EventReservationCreated,
		Actor:     "alice",
		Timestamp: time.Now(),
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)
	assert.Equal(t, "alice", received[0].Actor)
}

func TestDispatcher_UnsubscribedTypeIgnored(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(events.EventPaymentRecorded, func(_ context.Context, _ events.Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventReservationCreated}))
	assert.False(t, called)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(events.EventReservationCreated, func(_ context.Context, _ events.Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	dispatcher.Subscribe(events.EventReservationCreated, func(_ context.Context, _ events.Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventReservationCreated}))
	assert.Equal(t, []string{"first", "second"}, order)
}
