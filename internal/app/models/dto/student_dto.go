package dto

// CreateStudentRequest is the payload for registering a student
type CreateStudentRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password"`
	Department string   `json:"department"`
	CGPA       *float64 `json:"cgpa" binding:"omitempty,gte=0"`
}

// UpdateStudentRequest is the payload for a partial student update.
// Omitted fields are preserved.
type UpdateStudentRequest struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email" binding:"omitempty,email"`
	Password   *string  `json:"password"`
	Department *string  `json:"department"`
	CGPA       *float64 `json:"cgpa" binding:"omitempty,gte=0"`
}

// UpdateCGPARequest is the payload for setting a student's GPA directly
type UpdateCGPARequest struct {
	CGPA *float64 `json:"cgpa" binding:"required"`
}
