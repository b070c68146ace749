package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// MarkRepository persists subject marks.
type MarkRepository interface {
	Insert(ctx context.Context, m domain.Mark) error
	// Update rewrites the score of the mark matching
	// (StudentID, Subject, SemesterID).
	Update(ctx context.Context, m domain.Mark) error
	ListAll(ctx context.Context) ([]domain.Mark, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Mark, error)
}
