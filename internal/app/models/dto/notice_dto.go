package dto

// CreateNoticeRequest is the payload for posting a notice. An omitted date
// defaults to the current date.
type CreateNoticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Date     string `json:"date"`
	Priority string `json:"priority" binding:"required,oneof=high normal low"`
}
