package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// StudentRepository defines persistence operations for student records.
// Uniqueness of ID and Username is enforced here (unique indexes), not
// re-validated by callers.
type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) error
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	FindByUsername(ctx context.Context, username string) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
}
