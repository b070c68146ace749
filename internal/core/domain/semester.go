package domain

import (
	"errors"
	"time"
)

var ErrSemesterNotFound = errors.New("semester not found")

// Semester is a named academic period with sequential numeric identity.
type Semester struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// SemesterExamResult is a final exam score for one subject in one semester.
type SemesterExamResult struct {
	StudentID  string `json:"student_id"`
	SemesterID int64  `json:"semester_id"`
	Subject    string `json:"subject"`
	Score      int64  `json:"score"`
	MaxScore   int64  `json:"max_score"`
}
