package export

import (
	"time"

	"engagement-srv/internal/model"
)

// DownloadExpiry bounds how long a presigned link stays valid.
const DownloadExpiry = 15 * time.Minute

type CreateInput struct {
	Filter model.FilterState
	Sort   model.SortOrder
}

type ExportOutput struct {
	Export model.Export
}

type DownloadOutput struct {
	URL       string
	ExpiresAt time.Time
}
