package session

import (
	"sync"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
)

// Observer receives every published session. A nil user means anonymous.
type Observer func(u *models.User)

// Subscription is the handle returned by Manager.Subscribe.
type Subscription struct {
	b      *broadcaster
	fn     Observer
	active bool // guarded by b.mu
}

// Unsubscribe stops delivery to this observer. Calling it more than once,
// or from inside the observer itself, is fine.
func (s *Subscription) Unsubscribe() {
	s.b.remove(s)
}

// broadcaster fans the latest session out to observers.
//
// mu guards the observer set and the latest value. publishMu is held for the
// whole of a publish so that every observer sees changes in the same order
// and a new subscriber cannot interleave its replay with a delivery.
type broadcaster struct {
	publishMu sync.Mutex

	mu        sync.Mutex
	latest    *models.User
	observers []*Subscription
}

func newBroadcaster(initial *models.User) *broadcaster {
	return &broadcaster{latest: initial.Clone()}
}

func (b *broadcaster) subscribe(fn Observer) *Subscription {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	b.mu.Lock()
	sub := &Subscription{b: b, fn: fn, active: true}
	b.observers = append(b.observers, sub)
	latest := b.latest.Clone()
	b.mu.Unlock()

	fn(latest)
	return sub
}

func (b *broadcaster) remove(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	for i, o := range b.observers {
		if o == s {
			b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
			break
		}
	}
}

// publish records u as latest and delivers it to every active observer in
// subscription order. update runs under publishMu before delivery; callers
// use it to commit their own state in the same critical section.
func (b *broadcaster) publish(u *models.User, update func()) {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	if update != nil {
		update()
	}

	b.mu.Lock()
	b.latest = u.Clone()
	subs := b.observers
	b.mu.Unlock()

	for _, s := range subs {
		b.mu.Lock()
		active := s.active
		b.mu.Unlock()
		if active {
			s.fn(u.Clone())
		}
	}
}
