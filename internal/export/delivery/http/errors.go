package http

import (
	"errors"

	"engagement-srv/internal/export"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errExportNotFound   = pkgErrors.NewHTTPError(404, "Export not found")
	errExportNotReady   = pkgErrors.NewHTTPError(409, "Export is not ready for download")
	errExportFailed     = pkgErrors.NewHTTPError(410, "Export generation failed")
	errInvalidDateRange = pkgErrors.NewHTTPError(400, "Invalid date range")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, export.ErrExportNotFound):
		return errExportNotFound
	case errors.Is(err, export.ErrExportNotReady):
		return errExportNotReady
	case errors.Is(err, export.ErrExportFailed):
		return errExportFailed
	default:
		return err
	}
}
