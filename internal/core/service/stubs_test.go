package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/session"
	"github.com/academix/school-system/internal/infrastructure/cache"
)

// ---------------------------------------------------------------------------
// Shared stubs
// ---------------------------------------------------------------------------

var testLogger = zerolog.Nop()

// stubAudit collects entries synchronously so tests can assert on them.
type stubAudit struct {
	entries []domain.AuditEntry
}

func (a *stubAudit) Record(e domain.AuditEntry) {
	a.entries = append(a.entries, e)
}

// memSessionStore is an in-memory ports.SessionStore.
type memSessionStore struct {
	sessions map[string]session.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]session.Session)}
}

func (s *memSessionStore) Put(_ context.Context, id string, sess session.Session, _ time.Duration) error {
	s.sessions[id] = sess
	return nil
}

func (s *memSessionStore) Get(_ context.Context, id string) (session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return session.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *memSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

// readyCache returns a QueryCache already past the readiness gate.
func readyCache() *cache.QueryCache {
	qc := cache.New(time.Minute)
	qc.SetReady(true)
	return qc
}
