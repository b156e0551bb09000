package dto

import (
	"time"

	"github.com/alumnet/backend/internal/app/models"
)

// UserResponse is a user without the password hash
type UserResponse struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	GraduationYear int         `json:"graduationYear"`
	Bio            string      `json:"bio"`
	Location       string      `json:"location"`
	ProfilePic     string      `json:"profilePic"`
	Role           models.Role `json:"role"`
	IsApproved     bool        `json:"isApproved"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// NewUserResponse converts a user model
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		GraduationYear: u.GraduationYear,
		Bio:            u.Bio,
		Location:       u.Location,
		ProfilePic:     u.ProfilePic,
		Role:           u.Role,
		IsApproved:     u.IsApproved,
		CreatedAt:      u.CreatedAt,
	}
}

// NewUserResponses converts a list of users
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// DirectoryEntry is the directory view of an alumnus. It has no password
// and no approval field at all.
type DirectoryEntry struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	GraduationYear int         `json:"graduationYear"`
	Bio            string      `json:"bio"`
	Location       string      `json:"location"`
	ProfilePic     string      `json:"profilePic"`
	Role           models.Role `json:"role"`
}

// NewDirectoryEntries converts directory results
func NewDirectoryEntries(users []*models.User) []DirectoryEntry {
	out := make([]DirectoryEntry, 0, len(users))
	for _, u := range users {
		out = append(out, DirectoryEntry{
			ID:             u.ID,
			Email:          u.Email,
			Name:           u.Name,
			GraduationYear: u.GraduationYear,
			Bio:            u.Bio,
			Location:       u.Location,
			ProfilePic:     u.ProfilePic,
			Role:           u.Role,
		})
	}
	return out
}

// DirectoryQuery holds the optional directory filters
type DirectoryQuery struct {
	Year     string `form:"year"`
	Location string `form:"location"`
}

// UpdateProfileRequest is bound from JSON or multipart form; absent fields are unchanged
type UpdateProfileRequest struct {
	Name           *string `json:"name" form:"name"`
	Bio            *string `json:"bio" form:"bio"`
	Location       *string `json:"location" form:"location"`
	GraduationYear *int    `json:"graduationYear" form:"graduationYear"`
}

// ApprovalRequest sets a user's approval flag
type ApprovalRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// ApprovalResponse reports the stored user and whether the notice went out
type ApprovalResponse struct {
	User      UserResponse `json:"user"`
	EmailSent bool         `json:"emailSent"`
}
