package dto

// SaveResultRequest is the payload for recording marks for a (student, subject) pair
type SaveResultRequest struct {
	StudentID int64   `json:"studentId" binding:"required"`
	SubjectID int64   `json:"subjectId" binding:"required"`
	Marks     float64 `json:"marks" binding:"min=0,max=100"`
}
