package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/academix/school-system/internal/api/metrics"
	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
	"github.com/academix/school-system/internal/core/report"
	"github.com/academix/school-system/internal/infrastructure/cache"
)

const marksResource = "marks"

type MarkService struct {
	repo      ports.MarkRepository
	semesters ports.SemesterService
	cache     *cache.QueryCache
	audit     ports.AuditSink
	log       zerolog.Logger
}

func NewMarkService(repo ports.MarkRepository, semesters ports.SemesterService, qc *cache.QueryCache, audit ports.AuditSink, log zerolog.Logger) *MarkService {
	return &MarkService{repo: repo, semesters: semesters, cache: qc, audit: audit, log: log}
}

func (s *MarkService) Add(ctx context.Context, in ports.MarkInput) error {
	return s.write(ctx, in, "add_mark", s.repo.Insert)
}

func (s *MarkService) Update(ctx context.Context, in ports.MarkInput) error {
	return s.write(ctx, in, "update_mark", s.repo.Update)
}

func (s *MarkService) write(ctx context.Context, in ports.MarkInput, action string, op func(context.Context, domain.Mark) error) error {
	mark := domain.Mark{
		StudentID:  in.StudentID,
		Subject:    in.Subject,
		Score:      in.Score,
		MaxScore:   in.MaxScore,
		SemesterID: in.SemesterID,
	}
	if err := op(ctx, mark); err != nil {
		s.log.Error().Err(err).Str("student_id", in.StudentID).Str("action", action).Msg("mark write failed")
		return err
	}

	s.cache.InvalidatePrefix(marksResource)
	metrics.WritesTotal.WithLabelValues(marksResource).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    in.Actor.Name,
		Role:     in.Actor.Role,
		Action:   action,
		Resource: marksResource,
		Detail:   fmt.Sprintf("%s/%s", in.StudentID, in.Subject),
		At:       time.Now().UTC(),
	})
	return nil
}

func (s *MarkService) ListAll(ctx context.Context) ([]domain.Mark, error) {
	return cache.FetchAs(ctx, s.cache, cache.NewKey(marksResource), s.repo.ListAll)
}

func (s *MarkService) ListByStudent(ctx context.Context, studentID string) ([]domain.Mark, error) {
	return cache.FetchAs(ctx, s.cache, cache.NewKey(marksResource, studentID), func(ctx context.Context) ([]domain.Mark, error) {
		return s.repo.ListByStudent(ctx, studentID)
	})
}

// Report groups the student's marks by semester in first-seen order, each
// mark carrying its derived percentage and grade band.
func (s *MarkService) Report(ctx context.Context, studentID string) ([]ports.SemesterMarks, error) {
	marks, err := s.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	names, err := s.semesterNames(ctx)
	if err != nil {
		return nil, err
	}

	groups := report.GroupBySemester(marks, func(m domain.Mark) int64 { return m.SemesterID })
	out := make([]ports.SemesterMarks, 0, len(groups))
	for _, g := range groups {
		sm := ports.SemesterMarks{
			SemesterID:   g.SemesterID,
			SemesterName: names[g.SemesterID],
			Marks:        make([]ports.GradedMark, 0, len(g.Items)),
		}
		for _, m := range g.Items {
			pct := report.Percentage(m.Score, m.MaxScore)
			sm.Marks = append(sm.Marks, ports.GradedMark{Mark: m, Percentage: pct, Grade: report.Grade(pct)})
		}
		out = append(out, sm)
	}
	return out, nil
}

func (s *MarkService) semesterNames(ctx context.Context) (map[int64]string, error) {
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(semesters))
	for _, sem := range semesters {
		names[sem.ID] = sem.Name
	}
	return names, nil
}
