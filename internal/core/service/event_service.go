package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/academix/school-system/internal/api/metrics"
	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
	"github.com/academix/school-system/internal/core/report"
	"github.com/academix/school-system/internal/infrastructure/cache"
)

const eventsResource = "events"

type EventService struct {
	repo  ports.EventRepository
	cache *cache.QueryCache
	audit ports.AuditSink
	log   zerolog.Logger

	// now is swappable in tests; the calendar buckets around it.
	now func() time.Time
}

func NewEventService(repo ports.EventRepository, qc *cache.QueryCache, audit ports.AuditSink, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, cache: qc, audit: audit, log: log, now: time.Now}
}

// Calendar splits the cached event list around the current instant:
// upcoming soonest first, past most recent first.
func (s *EventService) Calendar(ctx context.Context) (*ports.EventCalendar, error) {
	events, err := cache.FetchAs(ctx, s.cache, cache.NewKey(eventsResource), s.repo.List)
	if err != nil {
		return nil, err
	}
	upcoming, past := report.SplitEvents(events, s.now().UTC())
	return &ports.EventCalendar{Upcoming: upcoming, Past: past}, nil
}

func (s *EventService) Create(ctx context.Context, in ports.EventInput) error {
	event := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date.UTC(),
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("failed to create event")
		return err
	}
	s.afterWrite("create_event", strconv.FormatInt(event.ID, 10), in.Actor)
	return nil
}

func (s *EventService) Update(ctx context.Context, id int64, in ports.EventInput) error {
	event := domain.Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date.UTC(),
	}
	if err := s.repo.Update(ctx, event); err != nil {
		s.log.Error().Err(err).Int64("event_id", id).Msg("failed to update event")
		return err
	}
	s.afterWrite("update_event", strconv.FormatInt(id, 10), in.Actor)
	return nil
}

func (s *EventService) Delete(ctx context.Context, id int64, actor ports.Actor) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("event_id", id).Msg("failed to delete event")
		return err
	}
	s.afterWrite("delete_event", strconv.FormatInt(id, 10), actor)
	return nil
}

func (s *EventService) afterWrite(action, detail string, actor ports.Actor) {
	s.cache.InvalidatePrefix(eventsResource)
	metrics.WritesTotal.WithLabelValues(eventsResource).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    actor.Name,
		Role:     actor.Role,
		Action:   action,
		Resource: eventsResource,
		Detail:   detail,
		At:       time.Now().UTC(),
	})
}
