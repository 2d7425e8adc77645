package models

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Noel Price"`
	Email        string `json:"email" example:"noel@example.com"`
	Password     string `json:"-"`
	Designation  string `json:"designation" example:"Assistant Professor"`
	DepartmentID *int64 `json:"-"`

	// DepartmentName is resolved on read when the teacher belongs to a department
	DepartmentName *string `json:"department,omitempty"`
}
