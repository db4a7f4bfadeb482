// Package connectivity models network reachability as an injected capability
// instead of a free-floating global, so it can be faked in tests.
//
// A reachability claim is optimistic: IsOnline() == true does not guarantee
// that the next request will succeed (captive portals, flaky links). Callers
// must still handle transport failures.
package connectivity

import "sync"

// Monitor reports the current online/offline state and notifies listeners
// about transitions.
type Monitor interface {
	// IsOnline reports the current reachability claim. Synchronous, no
	// round-trip verification.
	IsOnline() bool

	// Subscribe registers fn to be called on every state transition. The
	// returned cancel function removes the subscription; it is safe to call
	// more than once.
	Subscribe(fn func(online bool)) (cancel func())

	// Once registers fn to fire exactly once on the next transition to
	// online, then deregisters itself. fn may block; implementations must
	// not run it on the goroutine driving the state change. Used for write
	// intents queued while offline; a permanent listener here would be a
	// resource leak.
	Once(fn func())
}

// Switch is a Monitor whose state is driven explicitly via SetOnline.
// Listeners are notified only on actual transitions, so a single restored
// connection triggers each subscriber at most once.
type Switch struct {
	mu     sync.Mutex
	online bool
	nextID int
	subs   map[int]func(online bool)
	once   []func()
}

// NewSwitch returns a Switch with the given initial state. No notifications
// are emitted for the initial state.
func NewSwitch(online bool) *Switch {
	return &Switch{
		online: online,
		subs:   make(map[int]func(online bool)),
	}
}

// IsOnline implements Monitor.
func (s *Switch) IsOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// Subscribe implements Monitor.
func (s *Switch) Subscribe(fn func(online bool)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Once implements Monitor.
func (s *Switch) Once(fn func()) {
	s.mu.Lock()
	s.once = append(s.once, fn)
	s.mu.Unlock()
}

// SetOnline updates the reachability state. When the state actually changes,
// all subscribers are invoked with the new state on the calling goroutine
// without holding the internal lock. On a transition to online the queued
// one-shot callbacks are dropped from the queue and each fires on its own
// goroutine, so a slow write intent cannot stall the caller or the other
// subscribers.
func (s *Switch) SetOnline(online bool) {
	s.mu.Lock()
	if s.online == online {
		s.mu.Unlock()
		return
	}
	s.online = online

	subs := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	var oneShots []func()
	if online {
		oneShots = s.once
		s.once = nil
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
	for _, fn := range oneShots {
		go fn()
	}
}
