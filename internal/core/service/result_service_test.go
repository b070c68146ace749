package service

import (
	"context"
	"testing"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type stubSemesterService struct {
	semesters []domain.Semester
}

func (s *stubSemesterService) List(_ context.Context) ([]domain.Semester, error) {
	return s.semesters, nil
}

func (s *stubSemesterService) Add(_ context.Context, in ports.SemesterInput) (*domain.Semester, error) {
	sem := domain.Semester{
		ID:        int64(len(s.semesters) + 1),
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	s.semesters = append(s.semesters, sem)
	return &sem, nil
}

type stubResultRepo struct {
	results []domain.SemesterExamResult
}

func (r *stubResultRepo) Insert(_ context.Context, res domain.SemesterExamResult) error {
	r.results = append(r.results, res)
	return nil
}

func (r *stubResultRepo) ListByStudent(_ context.Context, studentID string) ([]domain.SemesterExamResult, error) {
	var out []domain.SemesterExamResult
	for _, res := range r.results {
		if res.StudentID == studentID {
			out = append(out, res)
		}
	}
	return out, nil
}

func TestResultService_ReportWeightedOverall(t *testing.T) {
	repo := &stubResultRepo{results: []domain.SemesterExamResult{
		// 40/50 = 80%, 30/100 = 30%. Weighted: 70/150 = 47%, not the 55%
		// a mean of percentages would give.
		{StudentID: "student-1", SemesterID: 1, Subject: "Maths", Score: 40, MaxScore: 50},
		{StudentID: "student-1", SemesterID: 1, Subject: "Physics", Score: 30, MaxScore: 100},
	}}
	semesters := &stubSemesterService{semesters: []domain.Semester{{ID: 1, Name: "Spring 2026"}}}
	svc := NewResultService(repo, semesters, readyCache(), &stubAudit{}, testLogger)

	groups, err := svc.Report(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 semester group, got %d", len(groups))
	}

	g := groups[0]
	if g.SemesterName != "Spring 2026" {
		t.Fatalf("unexpected semester name: %q", g.SemesterName)
	}
	if g.OverallPercentage != 47 {
		t.Fatalf("expected weighted overall 47, got %d", g.OverallPercentage)
	}
	if g.OverallGrade != "F" {
		t.Fatalf("expected overall grade F, got %q", g.OverallGrade)
	}
	if g.Results[0].Percentage != 80 || g.Results[0].Grade != "A" {
		t.Fatalf("unexpected first subject grading: %+v", g.Results[0])
	}
}

func TestResultService_ReportSingleSubjectMatchesItsPercentage(t *testing.T) {
	repo := &stubResultRepo{results: []domain.SemesterExamResult{
		{StudentID: "student-1", SemesterID: 1, Subject: "History", Score: 72, MaxScore: 100},
	}}
	semesters := &stubSemesterService{semesters: []domain.Semester{{ID: 1, Name: "Spring 2026"}}}
	svc := NewResultService(repo, semesters, readyCache(), &stubAudit{}, testLogger)

	groups, err := svc.Report(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if groups[0].OverallPercentage != 72 {
		t.Fatalf("single subject overall must equal its percentage, got %d", groups[0].OverallPercentage)
	}
	if groups[0].OverallGrade != "B" {
		t.Fatalf("expected grade B for 72, got %q", groups[0].OverallGrade)
	}
}

func TestResultService_ReportGroupsInFirstSeenOrder(t *testing.T) {
	repo := &stubResultRepo{results: []domain.SemesterExamResult{
		{StudentID: "student-1", SemesterID: 2, Subject: "Maths", Score: 50, MaxScore: 100},
		{StudentID: "student-1", SemesterID: 1, Subject: "Maths", Score: 60, MaxScore: 100},
		{StudentID: "student-1", SemesterID: 2, Subject: "Arts", Score: 70, MaxScore: 100},
	}}
	semesters := &stubSemesterService{semesters: []domain.Semester{
		{ID: 1, Name: "Autumn 2025"},
		{ID: 2, Name: "Spring 2026"},
	}}
	svc := NewResultService(repo, semesters, readyCache(), &stubAudit{}, testLogger)

	groups, err := svc.Report(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].SemesterID != 2 || groups[1].SemesterID != 1 {
		t.Fatalf("groups must keep first-seen order, got %d then %d", groups[0].SemesterID, groups[1].SemesterID)
	}
	if len(groups[0].Results) != 2 {
		t.Fatalf("expected 2 results in first group, got %d", len(groups[0].Results))
	}
}

func TestResultService_AddInvalidatesStudentReport(t *testing.T) {
	repo := &stubResultRepo{}
	semesters := &stubSemesterService{semesters: []domain.Semester{{ID: 1, Name: "Spring 2026"}}}
	svc := NewResultService(repo, semesters, readyCache(), &stubAudit{}, testLogger)
	ctx := context.Background()

	before, err := svc.Report(ctx, "student-1")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("expected empty report, got %d groups", len(before))
	}

	if err := svc.Add(ctx, ports.ResultInput{
		StudentID:  "student-1",
		SemesterID: 1,
		Subject:    "Maths",
		Score:      90,
		MaxScore:   100,
		Actor:      ports.Actor{Name: "Head Teacher", Role: "teacher"},
	}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	after, err := svc.Report(ctx, "student-1")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if len(after) != 1 || after[0].OverallPercentage != 90 {
		t.Fatalf("expected refetched report with new result, got %+v", after)
	}
}
