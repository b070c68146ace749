package ports

import (
	"context"
	"time"

	"github.com/academix/school-system/internal/core/session"
)

// SessionStore holds live sessions keyed by session id. A session deleted
// here is dead immediately, even if the bearer token has not expired; the
// auth middleware consults the store on every request.
type SessionStore interface {
	Put(ctx context.Context, id string, s session.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (session.Session, error)
	Delete(ctx context.Context, id string) error
}
