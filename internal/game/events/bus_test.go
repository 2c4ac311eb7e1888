package events

import (
	"testing"
	"time"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	// Test function handler
	var received Event
	bus.SubscribeFunc(TypeMatchStarted, func(e Event) {
		received = e
	})

	bus.Publish(NewMatchStartedEvent("test-match", 4, 92, 8))

	require.NotNil(t, received, "Event should have been received")
	assert.Equal(t, TypeMatchStarted, received.Type())
	assert.Equal(t, "test-match", received.MatchID())
	assert.Equal(t, 8, received.(*MatchStartedEvent).CityGroups)
}

func TestEventBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	calls := 0
	id1 := bus.SubscribeFunc(TypeRoundStarted, func(e Event) { calls++ })
	id2 := bus.SubscribeFunc(TypeRoundStarted, func(e Event) { calls++ })

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, bus.FuncHandlerCount(TypeRoundStarted))

	bus.Publish(NewRoundStartedEvent("test-match", 1))
	bus.Publish(NewRoundEndedEvent("test-match", 1, 3, 0, 0, time.Millisecond))

	assert.Equal(t, 2, calls)
}

// testSubscriber records the events it is interested in
type testSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *testSubscriber) ID() string { return ts.id }

func (ts *testSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *testSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBus_Subscriber(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	subscriber := &testSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeMatchStarted: true,
			TypeMatchEnded:   true,
		},
	}
	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.SubscriberCount())

	bus.Publish(NewMatchStartedEvent("test-match", 2, 10, 3))
	bus.Publish(NewRoundStartedEvent("test-match", 1))
	bus.Publish(NewMatchEndedEvent("test-match", 200, 0, []int{30, 10}, time.Minute))

	// Should only receive MatchStarted and MatchEnded
	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeMatchStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeMatchEnded, subscriber.receivedEvents[1].Type())

	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewMatchStartedEvent("test-match", 2, 10, 3))
	assert.Len(t, subscriber.receivedEvents, 2)
}

func TestEventBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	delivered := false
	bus.SubscribeFunc(TypeUnitKilled, func(e Event) { panic("boom") })
	bus.SubscribeFunc(TypeUnitKilled, func(e Event) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewUnitKilledEvent("m", 3, 7, 1, 2, core.NewPosition(4, 4), false))
	})
	assert.True(t, delivered)
}

func TestCommandRejectedEvent(t *testing.T) {
	cmd := core.Command{PlayerID: 1, UnitID: 4, Dir: core.North}
	e := NewCommandRejectedEvent("m", 2, cmd, core.WrapCommandError(cmd, core.ErrImpassable))

	assert.Equal(t, TypeCommandRejected, e.Type())
	assert.Equal(t, 2, e.Round)
	assert.Contains(t, e.Reason, core.ErrImpassable.Error())
}
