package automation

import "engagement-srv/internal/model"

const (
	ResponseModeAuto     = "auto"
	ResponseModeApproval = "approval_required"
)

type CreateRuleInput struct {
	Name     string
	Trigger  model.RuleTrigger
	Response model.RuleResponse
}

type SetEnabledInput struct {
	RuleID  string
	Enabled bool
}

type RuleOutput struct {
	Rule model.AutomationRule
}
