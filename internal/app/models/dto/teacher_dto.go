package dto

// CreateTeacherRequest is the payload for registering a teacher
type CreateTeacherRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// UpdateTeacherRequest is the payload for a partial teacher update.
// Omitted fields are preserved.
type UpdateTeacherRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password"`
	Designation *string `json:"designation"`
	Department  *string `json:"department"`
}
