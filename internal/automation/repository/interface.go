package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name RuleRepository
type RuleRepository interface {
	ListRules(ctx context.Context, workspaceID string) ([]model.AutomationRule, error)
	ListEnabledRules(ctx context.Context, workspaceID string) ([]model.AutomationRule, error)
	GetRuleByID(ctx context.Context, id string) (*model.AutomationRule, error)
	CreateRule(ctx context.Context, opts CreateRuleOptions) (*model.AutomationRule, error)
	SetEnabled(ctx context.Context, opts SetEnabledOptions) (*model.AutomationRule, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	RuleRepository
}
