package repository

type CreateExportOptions struct {
	ID          string
	WorkspaceID string
	UserID      string
	ObjectKey   string
}

type MarkCompletedOptions struct {
	ID            string
	FileSizeBytes int64
	RowCount      int
}
