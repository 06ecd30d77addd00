package model

import "time"

// AdminUser is a platform user as seen by the admin tooling.
type AdminUser struct {
	ID            string
	Email         string
	FullName      string
	Role          string
	WorkspaceID   string
	AdminNotes    string
	DemoScheduled *time.Time
	DemoCompleted bool
	CreatedAt     time.Time
}

// DisplayName returns the full name or the "N/A" fallback when missing.
func (u AdminUser) DisplayName() string {
	if u.FullName == "" {
		return "N/A"
	}
	return u.FullName
}

// DemoRequest is a prospect's request for a product demo.
type DemoRequest struct {
	ID          string
	UserID      string
	Email       string
	FullName    string
	CompanyName string
	Status      string // "requested" | "scheduled" | "completed"
	RequestedAt time.Time
	ScheduledAt *time.Time
	CompletedAt *time.Time
}
