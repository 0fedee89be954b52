package dto

// UpdateSettingRequest sets one preference field by name
type UpdateSettingRequest struct {
	Field string      `json:"field" binding:"required"`
	Value interface{} `json:"value"`
}

// ChangePasswordRequest is the settings password-change form payload
type ChangePasswordRequest struct {
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ThemeRequest persists the theme preference
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// ThemeResponse returns the persisted theme preference
type ThemeResponse struct {
	Theme string `json:"theme"`
}
