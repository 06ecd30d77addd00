package automation

import "errors"

var (
	ErrRuleNotFound        = errors.New("automation rule not found")
	ErrRuleNameRequired    = errors.New("rule name is required")
	ErrInvalidResponseMode = errors.New("invalid response mode")
	ErrRuleCreateFailed    = errors.New("failed to create automation rule")
)
