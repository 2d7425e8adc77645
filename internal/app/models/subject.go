package models

// Subject represents a subject taught in a department. The department
// reference is optional; (department_id, name) is unique.
type Subject struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DepartmentID *int64 `json:"-"`

	// DepartmentName is resolved on read when the subject belongs to a department
	DepartmentName *string `json:"department,omitempty"`
}
