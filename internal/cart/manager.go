package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager keeps one Store per browsing session. Sessions live in memory only;
// nothing survives a restart, which matches the cart's session-scoped
// lifecycle. Idle sessions are swept after ttl.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	shippingFee   float64
	autoHideAfter time.Duration
	ttl           time.Duration
}

type session struct {
	store    *Store
	lastSeen time.Time
}

func NewManager(shippingFee float64, autoHideAfter, ttl time.Duration) *Manager {
	return &Manager{
		sessions:      make(map[string]*session),
		shippingFee:   shippingFee,
		autoHideAfter: autoHideAfter,
		ttl:           ttl,
	}
}

// Create starts a new session and returns its id.
func (m *Manager) Create() string {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &session{
		store:    NewStore(m.shippingFee, m.autoHideAfter),
		lastSeen: time.Now(),
	}
	return id
}

// Get returns the session's store and refreshes its idle clock.
func (m *Manager) Get(id string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess.store, true
}

// Drop discards a session outright.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Sweep removes sessions idle longer than ttl and reports how many were cut.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps periodically until the context is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			m.Sweep(now)
		}
	}
}
