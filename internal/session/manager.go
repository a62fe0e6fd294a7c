package session

import (
	"context"
	"sync"
	"time"

	"sportstat/domain/core"
	"sportstat/internal"
)

// Factory builds a fresh session for id
type Factory func(id core.SessionID) *Session

// Manager keeps in-memory sessions keyed by id and drops the ones idle for
// longer than the TTL
type Manager struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*Session
	factory  Factory
	ttl      time.Duration
	now      func() time.Time
	logger   *internal.Logger
}

// NewManager creates a session manager
func NewManager(ttl time.Duration, factory Factory, logger *internal.Logger) *Manager {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Manager{
		sessions: make(map[core.SessionID]*Session),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Create registers a new empty session
func (m *Manager) Create() *Session {
	s := m.factory(core.NewSessionID())
	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	m.logger.Debug("created session %s", s.ID())
	return s
}

// Get returns the session for id
func (m *Manager) Get(id core.SessionID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

// Lookup parses raw and returns the matching session
func (m *Manager) Lookup(raw string) (*Session, error) {
	id, err := core.ParseSessionID(raw)
	if err != nil {
		return nil, core.ErrSessionNotFound
	}
	return m.Get(id)
}

// GetOrCreate returns the session for raw, or a new one when raw is empty,
// malformed or expired. created reports which case happened.
func (m *Manager) GetOrCreate(raw string) (s *Session, created bool) {
	if s, err := m.Lookup(raw); err == nil {
		return s, false
	}
	return m.Create(), true
}

// Delete drops the session for id
func (m *Manager) Delete(id core.SessionID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed
func (m *Manager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	cleaned := 0
	for id, s := range m.sessions {
		if s.lastActivity().Before(cutoff) {
			delete(m.sessions, id)
			cleaned++
		}
	}
	if cleaned > 0 {
		m.logger.Info("cleaned up %d idle sessions", cleaned)
	}
	return cleaned
}

// Run sweeps periodically until ctx is cancelled
func (m *Manager) Run(ctx context.Context) error {
	if m.ttl <= 0 {
		<-ctx.Done()
		return nil
	}
	interval := m.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep()
		}
	}
}
