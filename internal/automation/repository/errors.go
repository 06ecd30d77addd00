package repository

import "errors"

var (
	ErrRuleNotFound = errors.New("repository: automation rule not found")
	ErrRuleCreate   = errors.New("repository: failed to create automation rule")
	ErrRuleUpdate   = errors.New("repository: failed to update automation rule")
)
