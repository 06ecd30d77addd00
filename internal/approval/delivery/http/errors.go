package http

import (
	"errors"

	"engagement-srv/internal/approval"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errApprovalNotFound  = pkgErrors.NewHTTPError(404, "Approval item not found")
	errAlreadyResolved   = pkgErrors.NewHTTPError(409, "Approval item already resolved")
	errInvalidResolution = pkgErrors.NewHTTPError(400, "Invalid resolution action")
	errEmptySelection    = pkgErrors.NewHTTPError(400, "No approval items selected")
	errEditNotPending    = pkgErrors.NewHTTPError(409, "Only pending items can be edited")
	errResolveFailed     = pkgErrors.NewHTTPError(500, "Failed to resolve approval item")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, approval.ErrApprovalNotFound):
		return errApprovalNotFound
	case errors.Is(err, approval.ErrAlreadyResolved):
		return errAlreadyResolved
	case errors.Is(err, approval.ErrInvalidResolution):
		return errInvalidResolution
	case errors.Is(err, approval.ErrEmptySelection):
		return errEmptySelection
	case errors.Is(err, approval.ErrEditNotPending):
		return errEditNotPending
	case errors.Is(err, approval.ErrResolveFailed):
		return errResolveFailed
	default:
		return err
	}
}
