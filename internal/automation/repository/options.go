package repository

import "engagement-srv/internal/model"

type CreateRuleOptions struct {
	ID          string
	WorkspaceID string
	Name        string
	Trigger     model.RuleTrigger
	Response    model.RuleResponse
}

type SetEnabledOptions struct {
	RuleID      string
	WorkspaceID string
	Enabled     bool
}
