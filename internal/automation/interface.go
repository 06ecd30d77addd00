package automation

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListRules(ctx context.Context, sc model.Scope) ([]model.AutomationRule, error)
	CreateRule(ctx context.Context, sc model.Scope, input CreateRuleInput) (RuleOutput, error)
	SetEnabled(ctx context.Context, sc model.Scope, input SetEnabledInput) (RuleOutput, error)
}
