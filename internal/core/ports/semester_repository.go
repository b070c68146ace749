package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// SemesterRepository persists semesters. Insert assigns the next sequential
// identifier and writes it back to s.
type SemesterRepository interface {
	Insert(ctx context.Context, s *domain.Semester) error
	List(ctx context.Context) ([]domain.Semester, error)
}
