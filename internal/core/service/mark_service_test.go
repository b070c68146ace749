package service

import (
	"context"
	"testing"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type stubMarkRepo struct {
	marks []domain.Mark
}

func (r *stubMarkRepo) Insert(_ context.Context, m domain.Mark) error {
	r.marks = append(r.marks, m)
	return nil
}

func (r *stubMarkRepo) Update(_ context.Context, m domain.Mark) error {
	for i, mk := range r.marks {
		if mk.StudentID == m.StudentID && mk.Subject == m.Subject && mk.SemesterID == m.SemesterID {
			r.marks[i] = m
		}
	}
	return nil
}

func (r *stubMarkRepo) ListAll(_ context.Context) ([]domain.Mark, error) {
	out := make([]domain.Mark, len(r.marks))
	copy(out, r.marks)
	return out, nil
}

func (r *stubMarkRepo) ListByStudent(_ context.Context, studentID string) ([]domain.Mark, error) {
	var out []domain.Mark
	for _, m := range r.marks {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestMarkService_ReportGradesAndGroups(t *testing.T) {
	repo := &stubMarkRepo{marks: []domain.Mark{
		{StudentID: "student-1", Subject: "Maths", Score: 95, MaxScore: 100, SemesterID: 1},
		{StudentID: "student-1", Subject: "Physics", Score: 33, MaxScore: 50, SemesterID: 1},
		{StudentID: "student-1", Subject: "Maths", Score: 61, MaxScore: 100, SemesterID: 2},
		{StudentID: "student-2", Subject: "Maths", Score: 10, MaxScore: 100, SemesterID: 1},
	}}
	semesters := &stubSemesterService{semesters: []domain.Semester{
		{ID: 1, Name: "Autumn 2025"},
		{ID: 2, Name: "Spring 2026"},
	}}
	svc := NewMarkService(repo, semesters, readyCache(), &stubAudit{}, testLogger)

	groups, err := svc.Report(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 semester groups, got %d", len(groups))
	}
	if groups[0].SemesterName != "Autumn 2025" || groups[1].SemesterName != "Spring 2026" {
		t.Fatalf("unexpected group names: %q, %q", groups[0].SemesterName, groups[1].SemesterName)
	}

	first := groups[0].Marks
	if len(first) != 2 {
		t.Fatalf("expected 2 marks in first group, got %d", len(first))
	}
	if first[0].Percentage != 95 || first[0].Grade != "A+" {
		t.Fatalf("unexpected grading for 95/100: %+v", first[0])
	}
	// 33/50 = 66%, grade C.
	if first[1].Percentage != 66 || first[1].Grade != "C" {
		t.Fatalf("unexpected grading for 33/50: %+v", first[1])
	}
	if groups[1].Marks[0].Grade != "C" {
		t.Fatalf("expected C for 61, got %q", groups[1].Marks[0].Grade)
	}
}

func TestMarkService_ZeroMaxScoreGradesAsZero(t *testing.T) {
	repo := &stubMarkRepo{marks: []domain.Mark{
		{StudentID: "student-1", Subject: "Maths", Score: 10, MaxScore: 0, SemesterID: 1},
	}}
	semesters := &stubSemesterService{semesters: []domain.Semester{{ID: 1, Name: "Autumn 2025"}}}
	svc := NewMarkService(repo, semesters, readyCache(), &stubAudit{}, testLogger)

	groups, err := svc.Report(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if groups[0].Marks[0].Percentage != 0 || groups[0].Marks[0].Grade != "F" {
		t.Fatalf("zero max score must derive 0%% and F, got %+v", groups[0].Marks[0])
	}
}

func TestMarkService_UpdateInvalidatesCachedReads(t *testing.T) {
	repo := &stubMarkRepo{marks: []domain.Mark{
		{StudentID: "student-1", Subject: "Maths", Score: 40, MaxScore: 100, SemesterID: 1},
	}}
	semesters := &stubSemesterService{semesters: []domain.Semester{{ID: 1, Name: "Autumn 2025"}}}
	svc := NewMarkService(repo, semesters, readyCache(), &stubAudit{}, testLogger)
	ctx := context.Background()

	before, err := svc.ListByStudent(ctx, "student-1")
	if err != nil {
		t.Fatalf("ListByStudent returned error: %v", err)
	}
	if before[0].Score != 40 {
		t.Fatalf("unexpected initial score: %d", before[0].Score)
	}

	if err := svc.Update(ctx, ports.MarkInput{
		StudentID:  "student-1",
		Subject:    "Maths",
		Score:      85,
		MaxScore:   100,
		SemesterID: 1,
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	after, err := svc.ListByStudent(ctx, "student-1")
	if err != nil {
		t.Fatalf("ListByStudent returned error: %v", err)
	}
	if after[0].Score != 85 {
		t.Fatalf("expected refetched score 85, got %d", after[0].Score)
	}
}
