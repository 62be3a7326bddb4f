package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservers_SubscribeNotifyCancel(t *testing.T) {
	obs := NewObservers()

	var a, b int
	cancelA := obs.Subscribe(func() { a++ })
	cancelB := obs.Subscribe(func() { b++ })
	assert.Equal(t, 2, obs.Len())

	obs.Notify()
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	cancelA()
	obs.Notify()
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	// Cancel is idempotent.
	cancelA()
	cancelB()
	assert.Equal(t, 0, obs.Len())
}

func TestObservers_RemoveDuringNotifyDoesNotBreakCycle(t *testing.T) {
	obs := NewObservers()

	var first, second int
	var cancelSecond func()
	obs.Subscribe(func() {
		first++
		// Removing another observer mid-cycle must not crash the loop or
		// invoke anyone twice.
		cancelSecond()
	})
	cancelSecond = obs.Subscribe(func() { second++ })

	obs.Notify()
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second, "already snapshotted observer runs at most once")

	obs.Notify()
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, second, "removed observer is gone in the next cycle")
}

func TestObservers_AddDuringNotifyWaitsForNextCycle(t *testing.T) {
	obs := NewObservers()

	var added int
	obs.Subscribe(func() {
		if added == 0 {
			obs.Subscribe(func() { added++ })
		}
	})

	obs.Notify()
	assert.Equal(t, 0, added, "observer added mid-cycle not invoked in that cycle")

	obs.Notify()
	assert.Equal(t, 1, added)
}

func TestObservers_NotifyInSubscriptionOrder(t *testing.T) {
	obs := NewObservers()

	var order []string
	obs.Subscribe(func() { order = append(order, "a") })
	obs.Subscribe(func() { order = append(order, "b") })
	obs.Subscribe(func() { order = append(order, "c") })

	obs.Notify()
	assert.Equal(t, []string{"a", "b", "c"}, order)
}
