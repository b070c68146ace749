package ports

import (
	"context"
	"time"

	"github.com/academix/school-system/internal/core/domain"
)

// Actor identifies who performed a write, for the audit trail.
type Actor struct {
	Name string
	Role string
}

// --- Students ---

// CreateStudentInput carries everything needed to enrol a student.
type CreateStudentInput struct {
	Name     string
	Username string
	Password string
	Actor    Actor
}

type StudentService interface {
	List(ctx context.Context) ([]domain.Student, error)
	Create(ctx context.Context, in CreateStudentInput) (*domain.Student, error)
}

// --- Attendance ---

// AttendanceInput addresses one (student, day) record. Date is truncated to
// a whole day by the service.
type AttendanceInput struct {
	StudentID string
	Date      time.Time
	Status    domain.AttendanceStatus
	Actor     Actor
}

// AttendanceSummary is the derived attendance view for one student.
type AttendanceSummary struct {
	Rate           int
	BelowThreshold bool
}

// AttendanceOverview is the student dashboard payload: records sorted most
// recent first plus the summary.
type AttendanceOverview struct {
	Records []domain.Attendance
	Summary AttendanceSummary
}

type AttendanceService interface {
	Add(ctx context.Context, in AttendanceInput) error
	Update(ctx context.Context, in AttendanceInput) error
	ListAll(ctx context.Context) ([]domain.Attendance, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Attendance, error)
	Overview(ctx context.Context, studentID string) (*AttendanceOverview, error)
}

// --- Marks ---

type MarkInput struct {
	StudentID  string
	Subject    string
	Score      int64
	MaxScore   int64
	SemesterID int64
	Actor      Actor
}

// GradedMark is a mark with its derived percentage and grade band.
type GradedMark struct {
	domain.Mark
	Percentage int
	Grade      string
}

// SemesterMarks is one semester's group of graded marks, in first-seen
// semester order.
type SemesterMarks struct {
	SemesterID   int64
	SemesterName string
	Marks        []GradedMark
}

type MarkService interface {
	Add(ctx context.Context, in MarkInput) error
	Update(ctx context.Context, in MarkInput) error
	ListAll(ctx context.Context) ([]domain.Mark, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Mark, error)
	Report(ctx context.Context, studentID string) ([]SemesterMarks, error)
}

// --- Semesters ---

type SemesterInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Actor     Actor
}

type SemesterService interface {
	List(ctx context.Context) ([]domain.Semester, error)
	Add(ctx context.Context, in SemesterInput) (*domain.Semester, error)
}

// --- Semester exam results ---

type ResultInput struct {
	StudentID  string
	SemesterID int64
	Subject    string
	Score      int64
	MaxScore   int64
	Actor      Actor
}

// GradedResult is an exam result with its derived percentage and grade.
type GradedResult struct {
	domain.SemesterExamResult
	Percentage int
	Grade      string
}

// SemesterResults is one semester's exam results plus the weighted overall:
// sum of scores over sum of max scores, not a mean of per-subject
// percentages.
type SemesterResults struct {
	SemesterID        int64
	SemesterName      string
	Results           []GradedResult
	OverallPercentage int
	OverallGrade      string
}

type ResultService interface {
	Add(ctx context.Context, in ResultInput) error
	ListByStudent(ctx context.Context, studentID string) ([]domain.SemesterExamResult, error)
	Report(ctx context.Context, studentID string) ([]SemesterResults, error)
}
