package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/session"
)

// LoginResult carries the bearer token plus the session it references.
type LoginResult struct {
	Token   string
	Session session.Session
}

// AuthService implements the two login paths and session teardown.
//
// TeacherLogin verifies credentials against staff identities, then runs the
// admin check: a valid identity without the admin role fails with
// domain.ErrNotAdmin and clears any session created along the way.
// StudentLogin verifies username/password against student records.
type AuthService interface {
	TeacherLogin(ctx context.Context, username, password string) (*LoginResult, error)
	StudentLogin(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}
