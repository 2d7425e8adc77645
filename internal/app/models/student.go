package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64    `json:"id" example:"1"`
	Name         string   `json:"name" example:"Ava Clarke"`
	Email        string   `json:"email" example:"ava@example.com"`
	Password     string   `json:"-"`
	DepartmentID *int64   `json:"-"`
	GPA          *float64 `json:"cgpa,omitempty" example:"3.7"`

	// DepartmentName is resolved on read when the student belongs to a department
	DepartmentName *string `json:"department,omitempty"`
}
