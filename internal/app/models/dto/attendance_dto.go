package dto

// SaveAttendanceRequest is the payload for recording attendance for a whole
// class on a single date. Statuses is keyed by student ID.
type SaveAttendanceRequest struct {
	Date     string           `json:"date" binding:"required"`
	Statuses map[int64]string `json:"statuses" binding:"required"`
}
