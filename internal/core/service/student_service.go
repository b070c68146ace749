package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/academix/school-system/internal/api/metrics"
	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
	"github.com/academix/school-system/internal/infrastructure/cache"
)

const studentsResource = "students"

type StudentService struct {
	repo  ports.StudentRepository
	cache *cache.QueryCache
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, qc *cache.QueryCache, audit ports.AuditSink, log zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, cache: qc, audit: audit, log: log}
}

func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return cache.FetchAs(ctx, s.cache, cache.NewKey(studentsResource), s.repo.List)
}

// Create enrols a new student with a fresh opaque identity. The password is
// stored only as a bcrypt hash.
func (s *StudentService) Create(ctx context.Context, in ports.CreateStudentInput) (*domain.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	student := &domain.Student{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, student); err != nil {
		s.log.Error().Err(err).Str("username", in.Username).Msg("failed to create student")
		return nil, err
	}

	s.cache.InvalidatePrefix(studentsResource)
	metrics.WritesTotal.WithLabelValues(studentsResource).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    in.Actor.Name,
		Role:     in.Actor.Role,
		Action:   "create_student",
		Resource: studentsResource,
		Detail:   student.ID,
		At:       time.Now().UTC(),
	})
	s.log.Info().Str("student_id", student.ID).Msg("student created")
	return student, nil
}
