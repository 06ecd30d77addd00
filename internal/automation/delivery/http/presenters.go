package http

import (
	"time"

	"engagement-srv/internal/automation"
	"engagement-srv/internal/model"
)

type createRuleReq struct {
	Name     string             `json:"name" binding:"required"`
	Trigger  model.RuleTrigger  `json:"trigger"`
	Response model.RuleResponse `json:"response" binding:"required"`
}

func (r createRuleReq) toInput() automation.CreateRuleInput {
	return automation.CreateRuleInput{
		Name:     r.Name,
		Trigger:  r.Trigger,
		Response: r.Response,
	}
}

type setEnabledReq struct {
	RuleID  string `json:"-"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

type ruleResp struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Enabled   bool               `json:"enabled"`
	Trigger   model.RuleTrigger  `json:"trigger"`
	Response  model.RuleResponse `json:"response"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

func newRuleResp(rule model.AutomationRule) ruleResp {
	return ruleResp{
		ID:        rule.ID,
		Name:      rule.Name,
		Enabled:   rule.Enabled,
		Trigger:   rule.Trigger,
		Response:  rule.Response,
		CreatedAt: rule.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rule.UpdatedAt.Format(time.RFC3339),
	}
}
