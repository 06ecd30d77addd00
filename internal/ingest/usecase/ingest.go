package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	approvalRepo "engagement-srv/internal/approval/repository"
	"engagement-srv/internal/ingest"
	"engagement-srv/internal/model"
	triageRepo "engagement-srv/internal/triage/repository"
)

// highFollowerThreshold promotes interactions from large accounts.
const highFollowerThreshold = 10000

func (uc *implUseCase) IngestEvent(ctx context.Context, input ingest.EventInput) (ingest.EventOutput, error) {
	if input.WorkspaceID == "" || input.ExternalID == "" || input.Platform == "" {
		return ingest.EventOutput{}, ingest.ErrInvalidEvent
	}
	if !model.IsValidPlatform(input.Platform) {
		return ingest.EventOutput{}, ingest.ErrUnknownPlatform
	}

	it := buildInteraction(input)
	stored, inserted, err := uc.interactions.UpsertInteraction(ctx, triageRepo.UpsertInteractionOptions{
		Interaction: it,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.IngestEvent: Failed to upsert interaction: %v", err)
		return ingest.EventOutput{}, err
	}

	out := ingest.EventOutput{
		Interaction: *stored,
		Inserted:    inserted,
	}
	// Re-synced events must not fire rules again.
	if !inserted {
		return out, nil
	}

	rules, err := uc.rules.ListEnabledRules(ctx, input.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "ingest.usecase.IngestEvent: Failed to load rules: %v", err)
		return out, nil
	}

	for _, rule := range rules {
		if !matchTrigger(rule.Trigger, *stored) {
			continue
		}
		out.MatchedRules = append(out.MatchedRules, rule.ID)

		if rule.Response.RequiresApproval {
			if err := uc.createApproval(ctx, rule, *stored); err != nil {
				uc.l.Errorf(ctx, "ingest.usecase.IngestEvent: Failed to create approval for rule %s: %v", rule.ID, err)
				continue
			}
			out.ApprovalsCreated++
		} else {
			uc.publishAutoResponse(ctx, rule, *stored)
		}
	}

	return out, nil
}

func buildInteraction(input ingest.EventInput) model.Interaction {
	status := model.StatusUnread
	if input.Sentiment == model.SentimentNegative {
		status = model.StatusNeedsResponse
	}

	priority := model.PriorityNormal
	if input.Sentiment == model.SentimentNegative || input.AuthorFollowers >= highFollowerThreshold {
		priority = model.PriorityHigh
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return model.Interaction{
		ID:          uuid.New().String(),
		WorkspaceID: input.WorkspaceID,
		ExternalID:  input.ExternalID,
		Platform:    input.Platform,
		Kind:        input.Kind,
		Content:     input.Content,
		Author: model.Author{
			Name:      input.AuthorName,
			AvatarURL: input.AuthorAvatarURL,
			Followers: input.AuthorFollowers,
		},
		CreatedAt:  createdAt,
		Sentiment:  input.Sentiment,
		Status:     status,
		Priority:   priority,
		Rating:     input.Rating,
		ReplyCount: input.ReplyCount,
	}
}

func (uc *implUseCase) createApproval(ctx context.Context, rule model.AutomationRule, it model.Interaction) error {
	draft, err := uc.draftResponse(ctx, rule, it)
	if err != nil {
		return err
	}

	action := model.ActionReplyComment
	if it.Kind == model.KindReview {
		action = model.ActionReplyReview
	}

	_, err = uc.approvals.CreateApproval(ctx, approvalRepo.CreateApprovalOptions{
		ID:          uuid.New().String(),
		WorkspaceID: it.WorkspaceID,
		ChannelID:   string(it.Platform),
		ResponseID:  it.ExternalID,
		Payload: model.ApprovalPayload{
			Action: action,
			Reply: &model.ReplyPayload{
				CommentText:  it.Content,
				ResponseText: draft,
				RuleID:       rule.ID,
				RuleName:     rule.Name,
			},
		},
		Priority: approvalPriority(it),
		Urgent:   isUrgent(it),
	})
	return err
}

func approvalPriority(it model.Interaction) int {
	if it.Priority == model.PriorityHigh {
		return 2
	}
	return 1
}

func isUrgent(it model.Interaction) bool {
	if it.Sentiment == model.SentimentNegative {
		return true
	}
	return it.Rating != nil && *it.Rating <= 2
}

type autoResponseEvent struct {
	RuleID        string    `json:"rule_id"`
	WorkspaceID   string    `json:"workspace_id"`
	InteractionID string    `json:"interaction_id"`
	Platform      string    `json:"platform"`
	ExternalID    string    `json:"external_id"`
	At            time.Time `json:"at"`
}

// publishAutoResponse hands auto-mode responses to the dispatch pipeline.
// Best effort; the interaction itself is already persisted.
func (uc *implUseCase) publishAutoResponse(ctx context.Context, rule model.AutomationRule, it model.Interaction) {
	if uc.producer == nil {
		return
	}
	event := autoResponseEvent{
		RuleID:        rule.ID,
		WorkspaceID:   it.WorkspaceID,
		InteractionID: it.ID,
		Platform:      string(it.Platform),
		ExternalID:    it.ExternalID,
		At:            time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := uc.producer.Publish([]byte(it.WorkspaceID), data); err != nil {
		uc.l.Warnf(ctx, "ingest.usecase.publishAutoResponse: Failed to publish event: %v", err)
	}
}
