package store

import (
	"sort"
	"sync"
)

// Observers is an explicit observer list with add/remove/notify operations.
// It is safe against mutation during a notification cycle: an observer added
// mid-cycle is not invoked until the next cycle, and one removed mid-cycle
// is never invoked twice and never breaks the loop.
type Observers struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// NewObservers creates an empty observer list.
func NewObservers() *Observers {
	return &Observers{subs: make(map[int]func())}
}

// Subscribe registers fn to run on every notification and returns a cancel
// function. Cancel is idempotent.
func (o *Observers) Subscribe(fn func()) (cancel func()) {
	o.mu.Lock()
	id := o.next
	o.next++
	o.subs[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
	}
}

// Notify invokes every observer registered at the start of the cycle, in
// subscription order. The list is snapshotted under the lock and callbacks
// run outside it, so an observer may subscribe or cancel freely.
func (o *Observers) Notify() {
	o.mu.Lock()
	ids := make([]int, 0, len(o.subs))
	for id := range o.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, o.subs[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of registered observers.
func (o *Observers) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.subs)
}
