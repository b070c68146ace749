package domain

import "time"

// AttendanceStatus marks a student present or absent on a given day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// Valid reports whether s is one of the two known statuses.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance records one student's status on one day. Date is truncated to
// whole days before storage. There is no uniqueness constraint on
// (StudentID, Date): add and update are distinct operations and the caller
// chooses which one applies.
type Attendance struct {
	StudentID string           `json:"student_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
}
