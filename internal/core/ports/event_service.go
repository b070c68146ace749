package ports

import (
	"context"
	"time"

	"github.com/academix/school-system/internal/core/domain"
)

// EventInput carries a calendar entry's fields.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Actor       Actor
}

// EventCalendar buckets events around "now": Upcoming sorted soonest first,
// Past most recent first.
type EventCalendar struct {
	Upcoming []domain.Event
	Past     []domain.Event
}

type EventService interface {
	Calendar(ctx context.Context) (*EventCalendar, error)
	Create(ctx context.Context, in EventInput) error
	Update(ctx context.Context, id int64, in EventInput) error
	Delete(ctx context.Context, id int64, actor Actor) error
}
