// Package model provides data models for the FleetRisk system.
package model

import "fmt"

// Role is a user role in the RBAC model
type Role string

// The three roles understood by the access controller. Permissions are
// enumerated per action, never inherited between roles.
const (
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a free-text role string supplied by the front end.
// Unknown values fall back to viewer, the documented default.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleViewer, RoleManager, RoleAdmin:
		return Role(s)
	default:
		return RoleViewer
	}
}

// User represents a user in the system
type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// NewUser creates a new active user
func NewUser(username string, role Role) *User {
	return &User{
		Username: username,
		Role:     role,
		IsActive: true,
	}
}

// String renders the user for list output
func (u *User) String() string {
	state := "Active"
	if !u.IsActive {
		state = "Inactive"
	}
	return fmt.Sprintf("%s (%s) - %s", u.Username, u.Role, state)
}
