package service

import (
	"context"
	"testing"
	"time"

	"github.com/academix/school-system/internal/core/domain"
)

type stubComplaintRepo struct {
	complaints []domain.Complaint
	nextID     int64
}

func (r *stubComplaintRepo) Insert(_ context.Context, c *domain.Complaint) error {
	r.nextID++
	c.ID = r.nextID
	r.complaints = append(r.complaints, *c)
	return nil
}

func (r *stubComplaintRepo) List(_ context.Context) ([]domain.Complaint, error) {
	out := make([]domain.Complaint, len(r.complaints))
	copy(out, r.complaints)
	return out, nil
}

func TestComplaintService_ListAllMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &stubComplaintRepo{complaints: []domain.Complaint{
		{ID: 1, StudentID: "student-1", Message: "The heating is broken", Timestamp: base},
		{ID: 2, StudentID: "student-2", Message: "Library closes too early", Timestamp: base.AddDate(0, 0, 2)},
		{ID: 3, StudentID: "student-1", Message: "Lost my locker key", Timestamp: base.AddDate(0, 0, 1)},
	}, nextID: 3}
	svc := NewComplaintService(repo, readyCache(), &stubAudit{}, testLogger)

	complaints, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	want := []int64{2, 3, 1}
	for i, id := range want {
		if complaints[i].ID != id {
			t.Fatalf("complaints[%d]: expected id %d, got %d", i, id, complaints[i].ID)
		}
	}
}

func TestComplaintService_SubmitAuditsAsStudent(t *testing.T) {
	repo := &stubComplaintRepo{}
	audit := &stubAudit{}
	svc := NewComplaintService(repo, readyCache(), audit, testLogger)

	if err := svc.Submit(context.Background(), "student-1", "Ada", "The cafeteria menu never changes"); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if len(repo.complaints) != 1 {
		t.Fatalf("expected 1 stored complaint, got %d", len(repo.complaints))
	}
	if repo.complaints[0].ID != 1 {
		t.Fatalf("expected sequential id 1, got %d", repo.complaints[0].ID)
	}
	if len(audit.entries) != 1 || audit.entries[0].Role != "student" || audit.entries[0].Actor != "Ada" {
		t.Fatalf("unexpected audit entry: %+v", audit.entries)
	}
}
