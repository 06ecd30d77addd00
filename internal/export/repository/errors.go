package repository

import "errors"

var (
	ErrExportNotFound = errors.New("repository: export not found")
)
