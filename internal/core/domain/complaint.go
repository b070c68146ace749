package domain

import "time"

// Complaint is a message submitted by a student. Write-only from the
// student's side: only teachers can list complaints.
type Complaint struct {
	ID        int64     `json:"id"`
	StudentID string    `json:"student_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
