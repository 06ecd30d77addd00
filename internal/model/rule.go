package model

import "time"

// RuleTrigger selects which interactions a rule reacts to.
type RuleTrigger struct {
	Platforms  []Platform        `json:"platforms,omitempty"`
	Kinds      []InteractionKind `json:"kinds,omitempty"`
	Sentiments []Sentiment       `json:"sentiments,omitempty"`
	Keywords   []string          `json:"keywords,omitempty"`
}

// RuleResponse configures what a rule does when it fires.
type RuleResponse struct {
	Mode             string `json:"mode"` // "auto" | "approval_required"
	Template         string `json:"template,omitempty"`
	GenerateWithAI   bool   `json:"generate_with_ai"`
	RequiresApproval bool   `json:"requires_approval"`
}

// AutomationRule reacts to incoming interactions by drafting responses.
type AutomationRule struct {
	ID          string
	WorkspaceID string
	Name        string
	Enabled     bool
	Trigger     RuleTrigger
	Response    RuleResponse
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
