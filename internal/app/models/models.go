package models

// Role is the capability level of a user
type Role string

const (
	RoleAlumni Role = "alumni"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAlumni || r == RoleAdmin
}
