package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ApprovalStatus is the review state of an automation-generated action.
// pending is the only non-terminal state.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsTerminal reports whether the status can no longer change.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// ApprovalAction discriminates the payload variants of an approval item.
type ApprovalAction string

const (
	ActionReplyComment ApprovalAction = "reply_comment"
	ActionReplyReview  ApprovalAction = "reply_review"
	ActionFlagContent  ApprovalAction = "flag_content"
)

// ReplyPayload is the payload for reply_comment and reply_review actions.
type ReplyPayload struct {
	CommentText  string `json:"comment_text"`
	ResponseText string `json:"response_text"`
	VideoTitle   string `json:"video_title,omitempty"`
	VideoID      string `json:"video_id,omitempty"`
	RuleID       string `json:"rule_id"`
	RuleName     string `json:"rule_name"`
}

// FlagPayload is the payload for flag_content actions.
type FlagPayload struct {
	ContentText string `json:"content_text"`
	Reason      string `json:"reason"`
	RuleID      string `json:"rule_id"`
	RuleName    string `json:"rule_name"`
}

// ApprovalPayload is the tagged union of approval payload variants,
// keyed by Action.
type ApprovalPayload struct {
	Action ApprovalAction `json:"action"`
	Reply  *ReplyPayload  `json:"reply,omitempty"`
	Flag   *FlagPayload   `json:"flag,omitempty"`
}

// Validate checks that exactly the variant matching Action is present.
func (p ApprovalPayload) Validate() error {
	switch p.Action {
	case ActionReplyComment, ActionReplyReview:
		if p.Reply == nil {
			return fmt.Errorf("approval payload: action %s requires reply payload", p.Action)
		}
		if p.Flag != nil {
			return fmt.Errorf("approval payload: action %s must not carry flag payload", p.Action)
		}
	case ActionFlagContent:
		if p.Flag == nil {
			return fmt.Errorf("approval payload: action %s requires flag payload", p.Action)
		}
		if p.Reply != nil {
			return fmt.Errorf("approval payload: action %s must not carry reply payload", p.Action)
		}
	default:
		return fmt.Errorf("approval payload: unknown action %q", p.Action)
	}
	return nil
}

// ApprovalItem is an automation-generated action awaiting human sign-off.
type ApprovalItem struct {
	ID          string
	WorkspaceID string
	ChannelID   string
	ResponseID  string
	Payload     ApprovalPayload
	Priority    int
	Status      ApprovalStatus
	Urgent      bool
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// PayloadJSON marshals the payload for storage.
func (a ApprovalItem) PayloadJSON() ([]byte, error) {
	return json.Marshal(a.Payload)
}
