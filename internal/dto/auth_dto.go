package dto

import (
	"github.com/google/uuid"
)

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Name     string `json:"userName" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
}

// LoginRequest represents the request to authenticate.
// The identifier matches either the display name or the email.
type LoginRequest struct {
	UserNameOrEmail string `json:"userNameOrEmail" binding:"required" example:"alice"`
	Password        string `json:"password" binding:"required" example:"secret1"`
	RememberMe      bool   `json:"rememberMe"`
}

// UserResponse represents the public profile projection
type UserResponse struct {
	UserID uuid.UUID `json:"userId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Name   string    `json:"userName" example:"alice"`
	Email  string    `json:"email" example:"alice@example.com"`
}
