package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// ComplaintRepository persists student complaints. Insert assigns the next
// sequential identifier and writes it back to c.
type ComplaintRepository interface {
	Insert(ctx context.Context, c *domain.Complaint) error
	List(ctx context.Context) ([]domain.Complaint, error)
}
