package http

import (
	"errors"

	"engagement-srv/internal/polling"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errIntervalOutOfRange = pkgErrors.NewHTTPError(400, "Sync interval out of range")
	errStatsUnavailable   = pkgErrors.NewHTTPError(500, "Polling stats unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, polling.ErrIntervalOutOfRange):
		return errIntervalOutOfRange
	case errors.Is(err, polling.ErrStatsUnavailable):
		return errStatsUnavailable
	default:
		return err
	}
}
