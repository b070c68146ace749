package ports

import (
	"context"

	"github.com/academix/school-system/internal/core/domain"
)

// EventRepository persists calendar events. Insert assigns the next
// sequential identifier and writes it back to e.
type EventRepository interface {
	Insert(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e domain.Event) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Event, error)
}
