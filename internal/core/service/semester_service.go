package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/academix/school-system/internal/api/metrics"
	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
	"github.com/academix/school-system/internal/infrastructure/cache"
)

const semestersResource = "semesters"

type SemesterService struct {
	repo  ports.SemesterRepository
	cache *cache.QueryCache
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewSemesterService(repo ports.SemesterRepository, qc *cache.QueryCache, audit ports.AuditSink, log zerolog.Logger) *SemesterService {
	return &SemesterService{repo: repo, cache: qc, audit: audit, log: log}
}

func (s *SemesterService) List(ctx context.Context) ([]domain.Semester, error) {
	return cache.FetchAs(ctx, s.cache, cache.NewKey(semestersResource), s.repo.List)
}

func (s *SemesterService) Add(ctx context.Context, in ports.SemesterInput) (*domain.Semester, error) {
	semester := &domain.Semester{
		Name:      in.Name,
		StartDate: domain.DayOf(in.StartDate),
		EndDate:   domain.DayOf(in.EndDate),
	}
	if err := s.repo.Insert(ctx, semester); err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to add semester")
		return nil, err
	}

	s.cache.InvalidatePrefix(semestersResource)
	metrics.WritesTotal.WithLabelValues(semestersResource).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    in.Actor.Name,
		Role:     in.Actor.Role,
		Action:   "add_semester",
		Resource: semestersResource,
		Detail:   in.Name,
		At:       time.Now().UTC(),
	})
	s.log.Info().Int64("semester_id", semester.ID).Str("name", in.Name).Msg("semester added")
	return semester, nil
}
