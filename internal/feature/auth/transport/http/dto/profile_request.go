package dto

// UpdateProfileReq represents the request body for /api/auth/profile/update.
type UpdateProfileReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// ChangePasswordReq represents the request body for /api/auth/change-password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
