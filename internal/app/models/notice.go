package models

import (
	"encoding/json"
	"time"

	"github.com/eren/campuscore/internal/pkg/helpers"
)

// NoticePriority ranks a notice on the board
type NoticePriority string

const (
	NoticePriorityHigh   NoticePriority = "high"
	NoticePriorityNormal NoticePriority = "normal"
	NoticePriorityLow    NoticePriority = "low"
)

// IsValid reports whether the priority is one of the known values
func (p NoticePriority) IsValid() bool {
	switch p {
	case NoticePriorityHigh, NoticePriorityNormal, NoticePriorityLow:
		return true
	}
	return false
}

// Notice is a timestamped announcement
type Notice struct {
	ID       int64          `json:"id"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Date     time.Time      `json:"date"`
	Priority NoticePriority `json:"priority"`
}

// MarshalJSON emits the date as a calendar date, without a time component.
func (n Notice) MarshalJSON() ([]byte, error) {
	type alias Notice
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(n), helpers.DateOnly(n.Date)})
}
