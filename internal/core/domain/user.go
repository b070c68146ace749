package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrSessionNotFound = errors.New("session not found")

// ErrNotAdmin is the distinct "insufficient privileges" condition: the
// identity is valid but fails the admin check. It also forces the identity
// session to clear so a half-authenticated state cannot persist.
var ErrNotAdmin = errors.New("insufficient privileges")

// User is a staff identity behind the teacher login. Students authenticate
// through their own records, not through users.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
