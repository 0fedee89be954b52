package dto

// UpdateProfileRequest carries the editable profile fields
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Location string `json:"location"`
}
