package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrClosed is returned by [Manager.Mount] after [Manager.Close].
var ErrClosed = errors.New("session manager closed")

// Manager mounts pages and keeps track of the mounted ones.
type Manager struct {
	mu       sync.RWMutex
	sink     Sink
	cfg      Config
	sessions map[string]*Session
	closed   bool
}

// NewManager creates a [Manager] that mounts pages with cfg and publishes
// their state to sink.
func NewManager(cfg Config, sink Sink) (*Manager, error) {
	if sink == nil {
		return nil, errors.New("sink cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Manager{
		sink:     sink,
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}, nil
}

// SetConfig replaces the configuration used for future mounts. Pages that
// are already mounted keep theirs.
func (m *Manager) SetConfig(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()
	return nil
}

// Reconfigure replaces both the configuration and the sink used for future
// mounts in one step. Pages that are already mounted keep theirs.
func (m *Manager) Reconfigure(cfg Config, sink Sink) error {
	if sink == nil {
		return errors.New("sink cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	m.mu.Lock()
	m.cfg, m.sink = cfg, sink
	m.mu.Unlock()
	return nil
}

// Mount creates a page with a fresh ID and starts its timers.
func (m *Manager) Mount(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	s, err := Mount(ctx, uuid.NewString(), m.cfg, m.sink)
	if err != nil {
		return nil, err
	}
	m.sessions[s.ID()] = s
	return s, nil
}

// Get returns the mounted page with the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// Unmount unmounts the page with the given ID. It reports whether the page
// was mounted.
func (m *Manager) Unmount(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Unmount()
	}
	return ok
}

// Len returns the number of mounted pages.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close unmounts every page and rejects further mounts.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, s := range sessions {
		wg.Add(1)
		go func(s *Session) {
			defer wg.Done()
			s.Unmount()
		}(s)
	}
	wg.Wait()
}
