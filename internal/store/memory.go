package store

import (
	"sync"
)

// subscriberBuffer is the channel capacity given to each subscriber.
const subscriberBuffer = 100

// MemoryStore is an in-memory implementation of [Store].
//
// MemoryStore provides thread-safe storage with a publish-subscribe mechanism
// for real-time updates. Snapshots are keyed by session ID, with new
// snapshots replacing previous values.
//
// Subscribers receive updates via buffered channels (buffer size 100). Updates
// are sent non-blocking; if a subscriber's buffer is full, its oldest pending
// update is dropped so the newest one always gets through.
type MemoryStore struct {
	mu          sync.RWMutex
	snapshots   map[string]Snapshot
	subscribers map[chan Snapshot]string
	subMu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory [Store] implementation.
//
// The store is immediately ready for use. No cleanup is required when done.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots:   make(map[string]Snapshot),
		subscribers: make(map[chan Snapshot]string),
	}
}

// Update stores a [Snapshot] and notifies the session's subscribers.
func (m *MemoryStore) Update(snap Snapshot) {
	m.mu.Lock()
	m.snapshots[snap.Session] = snap
	m.mu.Unlock()

	m.notifySubscribers(snap)
}

// Get returns the latest snapshot stored for session.
func (m *MemoryStore) Get(session string) (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.snapshots[session]
	return snap, ok
}

// GetAll returns a snapshot of all currently stored sessions.
//
// The returned slice is a copy; modifications do not affect the store.
// Order is not guaranteed.
func (m *MemoryStore) GetAll() []Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Snapshot, 0, len(m.snapshots))
	for _, snap := range m.snapshots {
		results = append(results, snap)
	}
	return results
}

// Delete removes the session's snapshot and closes its subscriptions.
//
// Safe to call for an unknown session.
func (m *MemoryStore) Delete(session string) {
	m.mu.Lock()
	delete(m.snapshots, session)
	m.mu.Unlock()

	m.subMu.Lock()
	defer m.subMu.Unlock()

	for ch, id := range m.subscribers {
		if id == session {
			delete(m.subscribers, ch)
			close(ch)
		}
	}
}

// Subscribe creates a new subscription to one session's snapshots.
//
// The returned channel has a buffer of 100 messages. If the buffer fills
// (slow consumer), the oldest buffered updates are dropped for this subscriber.
//
// Caller must call [MemoryStore.Unsubscribe] when done to prevent resource leaks,
// unless the session is deleted first.
func (m *MemoryStore) Subscribe(session string) <-chan Snapshot {
	ch := make(chan Snapshot, subscriberBuffer)

	m.subMu.Lock()
	m.subscribers[ch] = session
	m.subMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
//
// After calling Unsubscribe, the channel will be closed and no further
// updates will be sent. Safe to call multiple times or with an unknown channel.
func (m *MemoryStore) Unsubscribe(ch <-chan Snapshot) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	// find and delete the channel (need to convert to the right type)
	for subCh := range m.subscribers {
		if subCh == ch {
			delete(m.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// notifySubscribers sends the snapshot to every subscriber of its session.
//
// This is non-blocking: if a subscriber's channel buffer is full, the oldest
// buffered snapshot makes room for snap. A session publishes one snapshot at
// a time, so the last state change always reaches every subscriber.
func (m *MemoryStore) notifySubscribers(snap Snapshot) {
	m.subMu.RLock()
	defer m.subMu.RUnlock()

	for ch, id := range m.subscribers {
		if id != snap.Session {
			continue
		}
		select {
		case ch <- snap:
			continue
		default:
		}
		// subscriber is slow, evict the oldest message
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
