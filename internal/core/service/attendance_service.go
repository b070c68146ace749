package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/academix/school-system/internal/api/metrics"
	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
	"github.com/academix/school-system/internal/core/report"
	"github.com/academix/school-system/internal/infrastructure/cache"
)

const attendanceResource = "attendance"

// AttendanceService handles attendance reads (cached, display-sorted) and the
// two distinct write operations. Add and update are never merged into an
// upsert: the backend enforces no uniqueness on (student, day), so the caller
// picks the operation.
type AttendanceService struct {
	repo  ports.AttendanceRepository
	cache *cache.QueryCache
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewAttendanceService(repo ports.AttendanceRepository, qc *cache.QueryCache, audit ports.AuditSink, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{repo: repo, cache: qc, audit: audit, log: log}
}

func (s *AttendanceService) Add(ctx context.Context, in ports.AttendanceInput) error {
	return s.write(ctx, in, "add_attendance", s.repo.Insert)
}

func (s *AttendanceService) Update(ctx context.Context, in ports.AttendanceInput) error {
	return s.write(ctx, in, "update_attendance", s.repo.Update)
}

func (s *AttendanceService) write(ctx context.Context, in ports.AttendanceInput, action string, op func(context.Context, domain.Attendance) error) error {
	record := domain.Attendance{
		StudentID: in.StudentID,
		Date:      domain.DayOf(in.Date),
		Status:    in.Status,
	}
	if err := op(ctx, record); err != nil {
		s.log.Error().Err(err).Str("student_id", in.StudentID).Str("action", action).Msg("attendance write failed")
		return err
	}

	// Invalidates the "all records" key and every per-student key.
	s.cache.InvalidatePrefix(attendanceResource)
	metrics.WritesTotal.WithLabelValues(attendanceResource).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    in.Actor.Name,
		Role:     in.Actor.Role,
		Action:   action,
		Resource: attendanceResource,
		Detail:   in.StudentID,
		At:       time.Now().UTC(),
	})
	return nil
}

func (s *AttendanceService) ListAll(ctx context.Context) ([]domain.Attendance, error) {
	records, err := cache.FetchAs(ctx, s.cache, cache.NewKey(attendanceResource), s.repo.ListAll)
	if err != nil {
		return nil, err
	}
	return report.SortAttendance(records), nil
}

func (s *AttendanceService) ListByStudent(ctx context.Context, studentID string) ([]domain.Attendance, error) {
	records, err := cache.FetchAs(ctx, s.cache, cache.NewKey(attendanceResource, studentID), func(ctx context.Context) ([]domain.Attendance, error) {
		return s.repo.ListByStudent(ctx, studentID)
	})
	if err != nil {
		return nil, err
	}
	return report.SortAttendance(records), nil
}

// Overview returns the student's records (most recent first) together with
// the derived rate and below-threshold flag.
func (s *AttendanceService) Overview(ctx context.Context, studentID string) (*ports.AttendanceOverview, error) {
	records, err := s.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	rate, below := report.AttendanceRate(records)
	return &ports.AttendanceOverview{
		Records: records,
		Summary: ports.AttendanceSummary{Rate: rate, BelowThreshold: below},
	}, nil
}
