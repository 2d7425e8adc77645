package dto

// CreateSubjectRequest is the payload for adding a subject to the catalog.
// The department is optional; when present it is resolved or created by name.
type CreateSubjectRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
}
