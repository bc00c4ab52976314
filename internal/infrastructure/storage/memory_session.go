package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

const (
	sessionTTL             = 24 * time.Hour
	sessionCleanupInterval = 10 * time.Minute
)

// SessionStore keeps server-side session state (login identity and the
// shopping cart) in memory, keyed by an opaque uuid token. Expired
// sessions are swept by a background janitor.
//
// Every request runs in its own goroutine, so the store never hands out
// its live *entity.Session: Create and Get return private snapshots,
// and all mutation goes through Update under the write lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*entity.Session)}
}

// snapshot deep-copies a session. Callers must hold the lock.
func snapshot(sess *entity.Session) *entity.Session {
	cp := *sess
	cp.Cart = make(map[int64]int, len(sess.Cart))
	for id, qty := range sess.Cart {
		cp.Cart[id] = qty
	}
	return &cp
}

// Create starts an anonymous session and returns a snapshot of it.
func (s *SessionStore) Create() *entity.Session {
	now := time.Now()
	sess := &entity.Session{
		Token:     uuid.NewString(),
		Cart:      make(map[int64]int),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return snapshot(sess)
}

// Get returns a snapshot of the session for a token, refreshing its
// idle timer.
func (s *SessionStore) Get(token string) (*entity.Session, bool) {
	if token == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Since(sess.LastSeen) > sessionTTL {
		delete(s.sessions, token)
		return nil, false
	}
	sess.LastSeen = time.Now()
	return snapshot(sess), true
}

// Update applies fn to the session under the write lock.
func (s *SessionStore) Update(token string, fn func(*entity.Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return false
	}
	fn(sess)
	sess.LastSeen = time.Now()
	return true
}

// Delete drops a session (logout).
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// StartJanitor sweeps idle sessions until ctx is cancelled.
func (s *SessionStore) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *SessionStore) sweep() {
	cutoff := time.Now().Add(-sessionTTL)
	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
}
