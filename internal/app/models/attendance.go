package models

import (
	"encoding/json"
	"time"

	"github.com/eren/campuscore/internal/pkg/helpers"
)

// AttendanceStatus is the per-day presence state of a student
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// IsValid reports whether the status is one of the known values
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// Attendance is one status row per (student, date)
type Attendance struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"studentId"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`

	// StudentName is resolved on read for list views
	StudentName string `json:"studentName,omitempty"`
}

// MarshalJSON emits the date as a calendar date, without a time component.
func (a Attendance) MarshalJSON() ([]byte, error) {
	type alias Attendance
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(a), helpers.DateOnly(a.Date)})
}
