package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got Event
	_, err := b.Subscribe("test.event", func(e Event) error {
		got = e
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("test.event", "tester", 123)))
	require.NotNil(t, got)
	assert.Equal(t, "tester", got.Source())
	assert.Equal(t, 123, got.Data())
	assert.False(t, got.Timestamp().IsZero())
}

func TestDeliveryFollowsSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int
	for i := 0; i < 5; i++ {
		_, err := b.Subscribe("ev", func(Event) error {
			order = append(order, i)
			return nil
		})
		require.NoError(t, err)
	}
	require.NoError(t, b.Publish(NewEvent("ev", "src", nil)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	_, _ = b.Subscribe("x", func(Event) error { return errA })
	_, _ = b.Subscribe("x", func(Event) error { return nil })
	_, _ = b.Subscribe("x", func(Event) error { return errB })

	err := b.Publish(NewEvent("x", "src", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	err = b.PublishBatch(NewEvent("x", "src", nil), NewEvent("y", "src", nil))
	assert.ErrorIs(t, err, errA)
}

func TestCancelDuringDelivery(t *testing.T) {
	b := New()
	calls := 0
	var sub Subscription
	sub, err := b.Subscribe("once", func(Event) error {
		calls++
		return sub.Cancel()
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("once", "src", nil)))
	require.NoError(t, b.Publish(NewEvent("once", "src", nil)))
	assert.Equal(t, 1, calls)
	assert.False(t, sub.IsActive())
	assert.Equal(t, 0, b.Subscribers("once"))

	assert.NoError(t, b.Unsubscribe(sub))
	assert.NoError(t, b.Unsubscribe(nil))
}

func TestSubscriptionIDsAreUnique(t *testing.T) {
	b := New()
	s1, _ := b.Subscribe("e", func(Event) error { return nil })
	s2, _ := b.Subscribe("e", func(Event) error { return nil })
	assert.NotEqual(t, s1.ID(), s2.ID())
	assert.Equal(t, "e", s1.EventType())
	assert.Equal(t, 2, b.Subscribers("e"))

	_, err := b.Subscribe("e", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}
