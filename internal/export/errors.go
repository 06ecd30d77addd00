package export

import "errors"

var (
	ErrExportNotFound = errors.New("export not found")
	ErrExportNotReady = errors.New("export is not ready for download")
	ErrExportFailed   = errors.New("export generation failed")
)
