package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// ResultRepository persists semester exam results.
type ResultRepository interface {
	Insert(ctx context.Context, r domain.SemesterExamResult) error
	ListByStudent(ctx context.Context, studentID string) ([]domain.SemesterExamResult, error)
}
