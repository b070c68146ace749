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

const resultsResource = "examresults"

type ResultService struct {
	repo      ports.ResultRepository
	semesters ports.SemesterService
	cache     *cache.QueryCache
	audit     ports.AuditSink
	log       zerolog.Logger
}

func NewResultService(repo ports.ResultRepository, semesters ports.SemesterService, qc *cache.QueryCache, audit ports.AuditSink, log zerolog.Logger) *ResultService {
	return &ResultService{repo: repo, semesters: semesters, cache: qc, audit: audit, log: log}
}

func (s *ResultService) Add(ctx context.Context, in ports.ResultInput) error {
	result := domain.SemesterExamResult{
		StudentID:  in.StudentID,
		SemesterID: in.SemesterID,
		Subject:    in.Subject,
		Score:      in.Score,
		MaxScore:   in.MaxScore,
	}
	if err := s.repo.Insert(ctx, result); err != nil {
		s.log.Error().Err(err).Str("student_id", in.StudentID).Msg("failed to add exam result")
		return err
	}

	s.cache.InvalidatePrefix(resultsResource)
	metrics.WritesTotal.WithLabelValues(resultsResource).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    in.Actor.Name,
		Role:     in.Actor.Role,
		Action:   "add_exam_result",
		Resource: resultsResource,
		Detail:   fmt.Sprintf("%s/%s", in.StudentID, in.Subject),
		At:       time.Now().UTC(),
	})
	return nil
}

func (s *ResultService) ListByStudent(ctx context.Context, studentID string) ([]domain.SemesterExamResult, error) {
	return cache.FetchAs(ctx, s.cache, cache.NewKey(resultsResource, studentID), func(ctx context.Context) ([]domain.SemesterExamResult, error) {
		return s.repo.ListByStudent(ctx, studentID)
	})
}

// Report groups the student's exam results by semester (first-seen order)
// with per-subject grades and the weighted overall per semester: total score
// over total max score, never a mean of per-subject percentages.
func (s *ResultService) Report(ctx context.Context, studentID string) ([]ports.SemesterResults, error) {
	results, err := s.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	semesters, err := s.semesters.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(semesters))
	for _, sem := range semesters {
		names[sem.ID] = sem.Name
	}

	groups := report.GroupBySemester(results, func(r domain.SemesterExamResult) int64 { return r.SemesterID })
	out := make([]ports.SemesterResults, 0, len(groups))
	for _, g := range groups {
		overall := report.SemesterOverall(g.Items)
		sr := ports.SemesterResults{
			SemesterID:        g.SemesterID,
			SemesterName:      names[g.SemesterID],
			Results:           make([]ports.GradedResult, 0, len(g.Items)),
			OverallPercentage: overall,
			OverallGrade:      report.Grade(overall),
		}
		for _, r := range g.Items {
			pct := report.Percentage(r.Score, r.MaxScore)
			sr.Results = append(sr.Results, ports.GradedResult{SemesterExamResult: r, Percentage: pct, Grade: report.Grade(pct)})
		}
		out = append(out, sr)
	}
	return out, nil
}
