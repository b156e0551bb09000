package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             string    `json:"id" db:"id" example:"5f0c6c2e-7b1a-4c8e-9f57-3f3c2b8d1a10"`
	Email          string    `json:"email" db:"email" example:"ada@example.com"`
	Password       string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Name           string    `json:"name" db:"name" example:"Ada Obi"`
	GraduationYear int       `json:"graduationYear" db:"graduation_year" example:"2012"`
	Bio            string    `json:"bio" db:"bio"`
	Location       string    `json:"location" db:"location" example:"Lagos"`
	ProfilePic     string    `json:"profilePic" db:"profile_pic"`
	Role           Role      `json:"role" db:"role" example:"alumni"`
	IsApproved     bool      `json:"isApproved" db:"is_approved"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin capability
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfileUpdate carries the optional profile fields; nil means unchanged
type ProfileUpdate struct {
	Name           *string
	Bio            *string
	Location       *string
	GraduationYear *int
	ProfilePic     *string
}

// Empty reports whether no field is set
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.Location == nil && p.GraduationYear == nil && p.ProfilePic == nil
}

// DirectoryFilter narrows the alumni directory
type DirectoryFilter struct {
	Year     *int
	Location string
}
