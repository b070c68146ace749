package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// AttendanceRepository persists attendance records. Insert and Update are
// deliberately distinct: no uniqueness is enforced on (student, date), so the
// caller chooses which operation applies.
type AttendanceRepository interface {
	Insert(ctx context.Context, a domain.Attendance) error
	// Update rewrites the status of the record matching (StudentID, Date).
	Update(ctx context.Context, a domain.Attendance) error
	ListAll(ctx context.Context) ([]domain.Attendance, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Attendance, error)
}
