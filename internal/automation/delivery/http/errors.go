package http

import (
	"errors"

	"engagement-srv/internal/automation"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errRuleNotFound        = pkgErrors.NewHTTPError(404, "Automation rule not found")
	errRuleNameRequired    = pkgErrors.NewHTTPError(400, "Rule name is required")
	errInvalidResponseMode = pkgErrors.NewHTTPError(400, "Invalid response mode")
	errRuleCreateFailed    = pkgErrors.NewHTTPError(500, "Failed to create automation rule")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, automation.ErrRuleNotFound):
		return errRuleNotFound
	case errors.Is(err, automation.ErrRuleNameRequired):
		return errRuleNameRequired
	case errors.Is(err, automation.ErrInvalidResponseMode):
		return errInvalidResponseMode
	case errors.Is(err, automation.ErrRuleCreateFailed):
		return errRuleCreateFailed
	default:
		return err
	}
}
