package model

import "time"

// ExportStatus tracks the lifecycle of an engagement export.
type ExportStatus string

const (
	ExportProcessing ExportStatus = "processing"
	ExportCompleted  ExportStatus = "completed"
	ExportFailed     ExportStatus = "failed"
)

// Export is a CSV snapshot of a filtered interaction list, stored in object storage.
type Export struct {
	ID            string
	WorkspaceID   string
	UserID        string
	Status        ExportStatus
	ObjectKey     string
	FileSizeBytes int64
	RowCount      int
	ErrorMessage  string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}
