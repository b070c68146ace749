package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

type ComplaintService interface {
	// Submit records a complaint from the given student.
	Submit(ctx context.Context, studentID, studentName, message string) error
	// ListAll returns every complaint, most recent first. Teacher-only.
	ListAll(ctx context.Context) ([]domain.Complaint, error)
}
