package dto

import "github.com/alumnet/backend/internal/app/models"

// SignupRequest represents a new alumni registration
type SignupRequest struct {
	Email          string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password       string `json:"password" binding:"required,min=6" example:"s3cret!"`
	Name           string `json:"name" binding:"required" example:"Ada Obi"`
	GraduationYear int    `json:"graduationYear" binding:"required" example:"2012"`
}

// SignupResponse confirms a pending registration; no token is issued
type SignupResponse struct {
	Msg string `json:"msg" example:"Registration successful. Your account is awaiting admin approval."`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// UserSummary is the public view of the logged-in user
type UserSummary struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// LoginResponse carries the session token
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expiresAt" example:"1767225600"`
	User      UserSummary `json:"user"`
}

// NewUserSummary builds a UserSummary from a user
func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
