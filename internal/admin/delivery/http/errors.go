package http

import (
	"errors"

	"engagement-srv/internal/admin"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errUserNotFound        = pkgErrors.NewHTTPError(404, "User not found")
	errEmailRequired       = pkgErrors.NewHTTPError(400, "Email is required")
	errDuplicateEmail      = pkgErrors.NewHTTPError(409, "Email already registered")
	errNotAdmin            = pkgErrors.NewHTTPError(403, "Admin access required")
	errUserCreateFailed    = pkgErrors.NewHTTPError(500, "Failed to create user")
	errInvalidScheduleTime = pkgErrors.NewHTTPError(400, "Invalid scheduled_at timestamp")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, admin.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, admin.ErrEmailRequired):
		return errEmailRequired
	case errors.Is(err, admin.ErrDuplicateEmail):
		return errDuplicateEmail
	case errors.Is(err, admin.ErrNotAdmin):
		return errNotAdmin
	case errors.Is(err, admin.ErrUserCreateFailed):
		return errUserCreateFailed
	default:
		return err
	}
}
