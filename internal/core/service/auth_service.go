package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/academix/school-system/internal/api/metrics"
	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
	"github.com/academix/school-system/internal/core/session"
)

// AuthService implements the two login paths. Each successful login creates a
// server-side session (revocable at any time) and issues a JWT referencing
// it; the session/role transitions themselves are the session.Apply reducer.
type AuthService struct {
	users     ports.UserRepository
	students  ports.StudentRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	students ports.StudentRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		students:  students,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// TeacherLogin authenticates a staff identity, then runs the admin check. An
// identity that authenticates but is not an admin fails with
// domain.ErrNotAdmin and leaves no session behind, so there is no
// half-authenticated state to retry from.
func (s *AuthService) TeacherLogin(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("teacher", "invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("teacher", "error").Inc()
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("teacher", "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// Identity is present: run the admin check and feed the outcome into the
	// reducer.
	var ev session.Event = session.TeacherRejected{}
	if user.Role == domain.RoleAdmin {
		ev = session.TeacherVerified{}
	}
	res := session.Apply(session.Session{}, ev)
	if res.Session.Role != session.RoleTeacher {
		// ClearIdentity: no session is stored, the identity is gone.
		metrics.LoginsTotal.WithLabelValues("teacher", "not_admin").Inc()
		s.log.Warn().Str("username", username).Msg("teacher login rejected: not an admin")
		return nil, domain.ErrNotAdmin
	}

	result, err := s.issue(ctx, res.Session, user.Name)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("teacher", "error").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("teacher", "ok").Inc()
	s.log.Info().Str("username", username).Msg("teacher logged in")
	return result, nil
}

// StudentLogin authenticates a student by username and password. The display
// name falls back to the submitted username when the record has none.
func (s *AuthService) StudentLogin(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	student, err := s.students.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			metrics.LoginsTotal.WithLabelValues("student", "invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("student", "error").Inc()
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("student", "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	res := session.Apply(session.Session{}, session.StudentAuthenticated{
		StudentID: student.ID,
		Name:      student.Name,
		Username:  username,
	})

	result, err := s.issue(ctx, res.Session, res.Session.StudentName)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("student", "error").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("student", "ok").Inc()
	s.log.Info().Str("student_id", student.ID).Msg("student logged in")
	return result, nil
}

// Logout deletes the server-side session; the bearer token dies with it.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) issue(ctx context.Context, sess session.Session, name string) (*ports.LoginResult, error) {
	sid := uuid.NewString()
	if err := s.sessions.Put(ctx, sid, sess, s.tokenTTL); err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"sid":  sid,
		"role": string(sess.Role),
		"name": name,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	if sess.Role == session.RoleStudent {
		claims["student_id"] = sess.StudentID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		_ = s.sessions.Delete(ctx, sid)
		return nil, err
	}
	return &ports.LoginResult{Token: token, Session: sess}, nil
}
