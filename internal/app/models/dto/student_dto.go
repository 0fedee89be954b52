package dto

// CreateStudentRequest is the admin students-table form payload
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Course   string `json:"course"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// UpdateStudentRequest carries the editable student fields
type UpdateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Course   string `json:"course"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}
