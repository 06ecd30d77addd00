package http

import (
	"errors"

	"engagement-srv/internal/triage"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errInteractionNotFound = pkgErrors.NewHTTPError(404, "Interaction not found")
	errEmptySelection      = pkgErrors.NewHTTPError(400, "No interactions selected")
	errInvalidBulkAction   = pkgErrors.NewHTTPError(400, "Invalid bulk action")
	errInvalidStatus       = pkgErrors.NewHTTPError(400, "Invalid interaction status")
	errTagRequired         = pkgErrors.NewHTTPError(400, "Tag is required")
	errStaleRefresh        = pkgErrors.NewHTTPError(409, "Refresh superseded by a newer request")
	errSuggestFailed       = pkgErrors.NewHTTPError(500, "Failed to generate reply suggestion")
	errViewNameRequired    = pkgErrors.NewHTTPError(400, "View name is required")
	errUpdateFailed        = pkgErrors.NewHTTPError(500, "Failed to update interaction")
	errWorkspaceMismatch   = pkgErrors.NewHTTPError(403, "Workspace does not match the authenticated session")
	errInvalidDateRange    = pkgErrors.NewHTTPError(400, "Invalid date range bound")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, triage.ErrInteractionNotFound):
		return errInteractionNotFound
	case errors.Is(err, triage.ErrEmptySelection):
		return errEmptySelection
	case errors.Is(err, triage.ErrInvalidBulkAction):
		return errInvalidBulkAction
	case errors.Is(err, triage.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, triage.ErrTagRequired):
		return errTagRequired
	case errors.Is(err, triage.ErrStaleRefresh):
		return errStaleRefresh
	case errors.Is(err, triage.ErrSuggestFailed):
		return errSuggestFailed
	case errors.Is(err, triage.ErrViewNameRequired):
		return errViewNameRequired
	case errors.Is(err, triage.ErrUpdateFailed):
		return errUpdateFailed
	default:
		return err
	}
}
