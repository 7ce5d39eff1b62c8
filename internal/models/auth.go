package models

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is the response after a successful login.
type AuthResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresIn   int    `json:"expiresIn" example:"900"`
	User        User   `json:"user"`
}

// RegisterRequest is the payload for self-registration. New accounts are
// LDA users awaiting approval.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"secret123"`
	Name     string `json:"name" binding:"required,min=2" example:"Thandi Mokoena"`
}

// ForgotPasswordRequest is the payload for requesting a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// ResetPasswordRequest is the payload for completing a password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" example:"pr_3f9a..."`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72" example:"evenmoresecret"`
}
