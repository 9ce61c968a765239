package dto

import "time"

// LoginRequest payload for POST /authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse returned on successful authentication.
type TokenResponse struct {
	AuthToken string    `json:"authToken"`
	Expires   time.Time `json:"expires"`
}

// ChangePasswordRequest payload for changing the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
