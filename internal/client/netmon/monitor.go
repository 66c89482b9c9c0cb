// Package netmon tracks network availability for the order client.
//
// The monitor does not probe anything itself: it is fed by whatever
// platform signal the host environment provides (a reachability check at
// startup, an OS network notification, a manual toggle) and turns raw
// signals into deduplicated online/offline transitions for subscribers.
// The signal is best effort; a false "online" is resolved by the
// submission client's own failure path, not here.
package netmon

import (
	"log/slog"
	"sync"
)

// Event is a connectivity transition.
type Event int

const (
	// BecameOnline fires when the state changes from offline to online.
	BecameOnline Event = iota
	// BecameOffline fires when the state changes from online to offline.
	BecameOffline
)

func (e Event) String() string {
	if e == BecameOnline {
		return "became_online"
	}
	return "became_offline"
}

// Monitor holds the process-wide connectivity state. Construct one per
// process and pass it by reference to every consumer.
type Monitor struct {
	logger      *slog.Logger
	subscribers map[int]func(Event)
	nextID      int
	mu          sync.Mutex
	online      bool
}

// New creates a monitor initialized from the platform signal's current
// value.
func New(initialOnline bool, logger *slog.Logger) *Monitor {
	return &Monitor{
		online:      initialOnline,
		subscribers: make(map[int]func(Event)),
		logger:      logger,
	}
}

// Online reports the current connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set feeds a raw connectivity signal into the monitor. Repeated identical
// signals are dropped; each actual state change notifies every subscriber
// exactly once.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online

	event := BecameOffline
	if online {
		event = BecameOnline
	}

	// Snapshot under lock, notify outside it: a subscriber may read
	// Online() or unsubscribe from within its callback.
	callbacks := make([]func(Event), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		callbacks = append(callbacks, fn)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed", "event", event.String())

	for _, fn := range callbacks {
		fn(event)
	}
}

// Subscribe registers a transition callback and returns a function that
// removes it.
func (m *Monitor) Subscribe(fn func(Event)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}
