package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// UserRepository defines persistence for staff identities (teacher logins).
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
