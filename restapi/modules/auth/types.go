// Package auth provides user provisioning and authorization handlers for the REST API.
package auth

// CreateUserRequest defines the body for user provisioning
type CreateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

// CheckAccessRequest defines the body for a raw authorization query
type CheckAccessRequest struct {
	Username string `json:"username"`
	Action   string `json:"action"`
}
