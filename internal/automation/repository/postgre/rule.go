package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"engagement-srv/internal/automation/repository"
	"engagement-srv/internal/model"
)

const ruleColumns = `id, workspace_id, name, enabled, trigger_config, response_config, created_at, updated_at`

type ruleRow struct {
	ID             string          `db:"id"`
	WorkspaceID    string          `db:"workspace_id"`
	Name           string          `db:"name"`
	Enabled        bool            `db:"enabled"`
	TriggerConfig  json.RawMessage `db:"trigger_config"`
	ResponseConfig json.RawMessage `db:"response_config"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (r ruleRow) toModel() (model.AutomationRule, error) {
	rule := model.AutomationRule{
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		Name:        r.Name,
		Enabled:     r.Enabled,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if err := json.Unmarshal(r.TriggerConfig, &rule.Trigger); err != nil {
		return rule, fmt.Errorf("decode trigger config: %w", err)
	}
	if err := json.Unmarshal(r.ResponseConfig, &rule.Response); err != nil {
		return rule, fmt.Errorf("decode response config: %w", err)
	}
	return rule, nil
}

func (r *implRepository) listRules(ctx context.Context, where string, args ...interface{}) ([]model.AutomationRule, error) {
	query := fmt.Sprintf("SELECT %s FROM automation_rules WHERE %s ORDER BY created_at ASC", ruleColumns, where)

	var rows []ruleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "automation.repository.postgre.listRules: Failed to list rules: %v", err)
		return nil, err
	}

	rules := make([]model.AutomationRule, 0, len(rows))
	for _, row := range rows {
		rule, err := row.toModel()
		if err != nil {
			r.l.Errorf(ctx, "automation.repository.postgre.listRules: %v", err)
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ListRules - All rules in a workspace.
func (r *implRepository) ListRules(ctx context.Context, workspaceID string) ([]model.AutomationRule, error) {
	return r.listRules(ctx, "workspace_id = $1", workspaceID)
}

// ListEnabledRules - Only rules that currently fire; used by the ingest path.
func (r *implRepository) ListEnabledRules(ctx context.Context, workspaceID string) ([]model.AutomationRule, error) {
	return r.listRules(ctx, "workspace_id = $1 AND enabled", workspaceID)
}

// GetRuleByID - Get rule by primary key.
func (r *implRepository) GetRuleByID(ctx context.Context, id string) (*model.AutomationRule, error) {
	var row ruleRow
	err := r.db.GetContext(ctx,
		&row, fmt.Sprintf("SELECT %s FROM automation_rules WHERE id = $1", ruleColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRuleNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "automation.repository.postgre.GetRuleByID: Failed to get rule: %v", err)
		return nil, err
	}

	rule, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "automation.repository.postgre.GetRuleByID: %v", err)
		return nil, err
	}
	return &rule, nil
}

// CreateRule - Insert a new rule, enabled by default.
func (r *implRepository) CreateRule(ctx context.Context, opts repository.CreateRuleOptions) (*model.AutomationRule, error) {
	trigger, err := json.Marshal(opts.Trigger)
	if err != nil {
		return nil, repository.ErrRuleCreate
	}
	responseCfg, err := json.Marshal(opts.Response)
	if err != nil {
		return nil, repository.ErrRuleCreate
	}

	now := time.Now()
	query := fmt.Sprintf(`
		INSERT INTO automation_rules (id, workspace_id, name, enabled, trigger_config, response_config, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, $4, $5, $6, $6)
		RETURNING %s`, ruleColumns)

	var row ruleRow
	if err := r.db.GetContext(ctx, &row, query, opts.ID, opts.WorkspaceID, opts.Name, trigger, responseCfg, now); err != nil {
		r.l.Errorf(ctx, "automation.repository.postgre.CreateRule: Failed to insert rule: %v", err)
		return nil, repository.ErrRuleCreate
	}

	rule, err := row.toModel()
	if err != nil {
		return nil, repository.ErrRuleCreate
	}
	return &rule, nil
}

// SetEnabled - Flip the enabled flag.
func (r *implRepository) SetEnabled(ctx context.Context, opts repository.SetEnabledOptions) (*model.AutomationRule, error) {
	query := fmt.Sprintf(`
		UPDATE automation_rules
		SET enabled = $1, updated_at = $2
		WHERE id = $3 AND workspace_id = $4
		RETURNING %s`, ruleColumns)

	var row ruleRow
	err := r.db.GetContext(ctx, &row, query, opts.Enabled, time.Now(), opts.RuleID, opts.WorkspaceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRuleNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "automation.repository.postgre.SetEnabled: Failed to update rule: %v", err)
		return nil, repository.ErrRuleUpdate
	}

	rule, err := row.toModel()
	if err != nil {
		return nil, repository.ErrRuleUpdate
	}
	return &rule, nil
}
