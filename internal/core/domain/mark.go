package domain

// Mark is a subject score recorded for a student within a semester.
// Expected but not enforced here: score >= 0 and maxScore > 0; the derivation
// layer guards division by zero instead of rejecting the record.
type Mark struct {
	StudentID  string `json:"student_id"`
	Subject    string `json:"subject"`
	Score      int64  `json:"score"`
	MaxScore   int64  `json:"max_score"`
	SemesterID int64  `json:"semester_id"`
}
