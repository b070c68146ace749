package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/session"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, exists := r.users[u.Username]; exists {
		return domain.ErrUserExists
	}
	clone := *u
	r.users[u.Username] = &clone
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubStudentRepo struct {
	students map[string]*domain.Student
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{students: make(map[string]*domain.Student)}
}

func (r *stubStudentRepo) Create(_ context.Context, s *domain.Student) error {
	if _, exists := r.students[s.Username]; exists {
		return domain.ErrStudentExists
	}
	clone := *s
	r.students[s.Username] = &clone
	return nil
}

func (r *stubStudentRepo) FindByID(_ context.Context, id string) (*domain.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *stubStudentRepo) FindByUsername(_ context.Context, username string) (*domain.Student, error) {
	s, ok := r.students[username]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubStudentRepo) List(_ context.Context) ([]domain.Student, error) {
	out := make([]domain.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, *s)
	}
	return out, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func newTestAuthService(t *testing.T, users *stubUserRepo, students *stubStudentRepo, sessions *memSessionStore) *AuthService {
	t.Helper()
	return NewAuthService(users, students, sessions, "secret", time.Hour, testLogger)
}

func TestAuthService_TeacherLogin_Success(t *testing.T) {
	users := newStubUserRepo()
	users.users["head"] = &domain.User{
		ID:           "u-1",
		Username:     "head",
		PasswordHash: hashPassword(t, "correct-horse"),
		Name:         "Head Teacher",
		Role:         domain.RoleAdmin,
	}
	sessions := newMemSessionStore()
	svc := newTestAuthService(t, users, newStubStudentRepo(), sessions)

	result, err := svc.TeacherLogin(context.Background(), "head", "correct-horse")
	if err != nil {
		t.Fatalf("TeacherLogin returned error: %v", err)
	}
	if result.Session.Role != session.RoleTeacher {
		t.Fatalf("expected teacher role, got %q", result.Session.Role)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(sessions.sessions))
	}

	// The token must reference the stored session.
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if _, ok := sessions.sessions[sid]; !ok {
		t.Fatalf("token sid %q not found in session store", sid)
	}
}

func TestAuthService_TeacherLogin_NotAdminLeavesNoSession(t *testing.T) {
	users := newStubUserRepo()
	users.users["assistant"] = &domain.User{
		ID:           "u-2",
		Username:     "assistant",
		PasswordHash: hashPassword(t, "pass1234"),
		Name:         "Assistant",
		Role:         domain.RoleUser,
	}
	sessions := newMemSessionStore()
	svc := newTestAuthService(t, users, newStubStudentRepo(), sessions)

	_, err := svc.TeacherLogin(context.Background(), "assistant", "pass1234")
	if !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("rejected login must not persist a session, found %d", len(sessions.sessions))
	}
}

func TestAuthService_TeacherLogin_InvalidCredentials(t *testing.T) {
	users := newStubUserRepo()
	users.users["head"] = &domain.User{
		Username:     "head",
		PasswordHash: hashPassword(t, "correct-horse"),
		Role:         domain.RoleAdmin,
	}
	svc := newTestAuthService(t, users, newStubStudentRepo(), newMemSessionStore())

	if _, err := svc.TeacherLogin(context.Background(), "head", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.TeacherLogin(context.Background(), "nobody", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthService_StudentLogin_Success(t *testing.T) {
	students := newStubStudentRepo()
	students.students["ada"] = &domain.Student{
		ID:           "student-1",
		Username:     "ada",
		PasswordHash: hashPassword(t, "lovelace"),
		Name:         "Ada Lovelace",
	}
	sessions := newMemSessionStore()
	svc := newTestAuthService(t, newStubUserRepo(), students, sessions)

	result, err := svc.StudentLogin(context.Background(), "ada", "lovelace")
	if err != nil {
		t.Fatalf("StudentLogin returned error: %v", err)
	}
	if result.Session.Role != session.RoleStudent {
		t.Fatalf("expected student role, got %q", result.Session.Role)
	}
	if result.Session.StudentID != "student-1" {
		t.Fatalf("unexpected student id: %q", result.Session.StudentID)
	}
	if result.Session.StudentName != "Ada Lovelace" {
		t.Fatalf("unexpected student name: %q", result.Session.StudentName)
	}
}

func TestAuthService_StudentLogin_NameFallsBackToUsername(t *testing.T) {
	students := newStubStudentRepo()
	students.students["ada"] = &domain.Student{
		ID:           "student-1",
		Username:     "ada",
		PasswordHash: hashPassword(t, "lovelace"),
	}
	svc := newTestAuthService(t, newStubUserRepo(), students, newMemSessionStore())

	result, err := svc.StudentLogin(context.Background(), "ada", "lovelace")
	if err != nil {
		t.Fatalf("StudentLogin returned error: %v", err)
	}
	if result.Session.StudentName != "ada" {
		t.Fatalf("expected fallback to username, got %q", result.Session.StudentName)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	students := newStubStudentRepo()
	students.students["ada"] = &domain.Student{
		ID:           "student-1",
		Username:     "ada",
		PasswordHash: hashPassword(t, "lovelace"),
		Name:         "Ada",
	}
	sessions := newMemSessionStore()
	svc := newTestAuthService(t, newStubUserRepo(), students, sessions)

	result, err := svc.StudentLogin(context.Background(), "ada", "lovelace")
	if err != nil {
		t.Fatalf("StudentLogin returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid, _ := claims["sid"].(string)

	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := sessions.Get(context.Background(), sid); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session gone after logout, got %v", err)
	}
}
