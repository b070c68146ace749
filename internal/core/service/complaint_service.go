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

const complaintsResource = "complaints"

type ComplaintService struct {
	repo  ports.ComplaintRepository
	cache *cache.QueryCache
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, qc *cache.QueryCache, audit ports.AuditSink, log zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, cache: qc, audit: audit, log: log}
}

// Submit records a complaint from the given student. Message length is
// validated at the transport layer before any write happens here.
func (s *ComplaintService) Submit(ctx context.Context, studentID, studentName, message string) error {
	complaint := &domain.Complaint{
		StudentID: studentID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, complaint); err != nil {
		s.log.Error().Err(err).Str("student_id", studentID).Msg("failed to submit complaint")
		return err
	}

	s.cache.InvalidatePrefix(complaintsResource)
	metrics.WritesTotal.WithLabelValues(complaintsResource).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    studentName,
		Role:     "student",
		Action:   "submit_complaint",
		Resource: complaintsResource,
		Detail:   studentID,
		At:       time.Now().UTC(),
	})
	return nil
}

// ListAll returns every complaint, most recent first.
func (s *ComplaintService) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	complaints, err := cache.FetchAs(ctx, s.cache, cache.NewKey(complaintsResource), s.repo.List)
	if err != nil {
		return nil, err
	}
	return report.SortComplaints(complaints), nil
}
