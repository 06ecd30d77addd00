package model

import "time"

// Workspace is a tenant scope under which interactions and settings are grouped.
type Workspace struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
}

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	WorkspaceID string `json:"workspace_id,omitempty"`
}

// IsAdmin reports whether the caller holds the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == "admin"
}
