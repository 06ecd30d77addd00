package onboarding

import "errors"

var (
	ErrUnknownStep = errors.New("unknown onboarding step")
)
