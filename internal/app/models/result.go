package models

// Result holds one mark per (student, subject)
type Result struct {
	ID        int64   `json:"id"`
	StudentID int64   `json:"studentId"`
	SubjectID int64   `json:"subjectId"`
	Marks     float64 `json:"marks"`

	// Resolved on read for list views
	StudentName string `json:"studentName,omitempty"`
	SubjectName string `json:"subjectName,omitempty"`
}
