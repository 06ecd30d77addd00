package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"engagement-srv/internal/automation"
	"engagement-srv/internal/automation/repository"
	"engagement-srv/internal/model"
)

// ListRules returns all rules in the caller's workspace.
func (uc *implUseCase) ListRules(ctx context.Context, sc model.Scope) ([]model.AutomationRule, error) {
	rules, err := uc.repo.ListRules(ctx, sc.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "automation.usecase.ListRules: Failed to list rules: %v", err)
		return nil, err
	}
	return rules, nil
}

// CreateRule validates and persists a new rule. Rules requiring approval
// route their generated responses through the approval queue.
func (uc *implUseCase) CreateRule(ctx context.Context, sc model.Scope, input automation.CreateRuleInput) (automation.RuleOutput, error) {
	if input.Name == "" {
		return automation.RuleOutput{}, automation.ErrRuleNameRequired
	}
	switch input.Response.Mode {
	case automation.ResponseModeAuto, automation.ResponseModeApproval:
	default:
		return automation.RuleOutput{}, automation.ErrInvalidResponseMode
	}
	// approval_required always routes through the queue regardless of the flag.
	if input.Response.Mode == automation.ResponseModeApproval {
		input.Response.RequiresApproval = true
	}

	rule, err := uc.repo.CreateRule(ctx, repository.CreateRuleOptions{
		ID:          uuid.New().String(),
		WorkspaceID: sc.WorkspaceID,
		Name:        input.Name,
		Trigger:     input.Trigger,
		Response:    input.Response,
	})
	if err != nil {
		uc.l.Errorf(ctx, "automation.usecase.CreateRule: Failed to create rule: %v", err)
		return automation.RuleOutput{}, automation.ErrRuleCreateFailed
	}

	return automation.RuleOutput{Rule: *rule}, nil
}

// SetEnabled toggles a rule on or off.
func (uc *implUseCase) SetEnabled(ctx context.Context, sc model.Scope, input automation.SetEnabledInput) (automation.RuleOutput, error) {
	rule, err := uc.repo.SetEnabled(ctx, repository.SetEnabledOptions{
		RuleID:      input.RuleID,
		WorkspaceID: sc.WorkspaceID,
		Enabled:     input.Enabled,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRuleNotFound) {
			return automation.RuleOutput{}, automation.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "automation.usecase.SetEnabled: Failed to toggle rule: %v", err)
		return automation.RuleOutput{}, err
	}

	return automation.RuleOutput{Rule: *rule}, nil
}
