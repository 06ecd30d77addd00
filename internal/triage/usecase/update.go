package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage"
	"engagement-srv/internal/triage/engine"
	"engagement-srv/internal/triage/repository"
)

// Update applies a partial edit optimistically: the cached feed entry is
// patched first, then the repository write runs. If the write fails the
// cached entry is restored from its snapshot, so the feed never shows a
// state that was not persisted.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input triage.UpdateInput) (triage.InteractionOutput, error) {
	prev, err := uc.repo.GetInteractionByID(ctx, input.InteractionID)
	if err != nil {
		if errors.Is(err, repository.ErrInteractionNotFound) {
			return triage.InteractionOutput{}, triage.ErrInteractionNotFound
		}
		uc.l.Errorf(ctx, "triage.usecase.Update: Failed to load interaction: %v", err)
		return triage.InteractionOutput{}, triage.ErrUpdateFailed
	}
	if prev.WorkspaceID != sc.WorkspaceID {
		return triage.InteractionOutput{}, triage.ErrInteractionNotFound
	}

	patch := engine.Patch{
		Status:     input.Status,
		Sentiment:  input.Sentiment,
		Priority:   input.Priority,
		AssignedTo: input.AssignedTo,
		AddTags:    input.AddTags,
		RemoveTags: input.RemoveTags,
	}
	if patch.IsZero() {
		return triage.InteractionOutput{Interaction: *prev}, nil
	}

	feed := uc.feed(sc.WorkspaceID)
	snapshot, cached := feed.Get(input.InteractionID)
	if cached {
		feed.UpdateInteraction(input.InteractionID, patch)
	}

	merged := patch.Apply(*prev)
	updated, err := uc.repo.UpdateInteraction(ctx, repository.UpdateInteractionOptions{
		ID:         input.InteractionID,
		Status:     input.Status,
		Sentiment:  input.Sentiment,
		Priority:   input.Priority,
		AssignedTo: input.AssignedTo,
		Tags:       merged.Tags,
	})
	if err != nil {
		if cached {
			feed.Put(snapshot)
		}
		if errors.Is(err, repository.ErrInteractionNotFound) {
			return triage.InteractionOutput{}, triage.ErrInteractionNotFound
		}
		uc.l.Errorf(ctx, "triage.usecase.Update: Failed to persist update: %v", err)
		return triage.InteractionOutput{}, triage.ErrUpdateFailed
	}

	uc.publishAudit(ctx, sc, "update", []string{input.InteractionID})

	return triage.InteractionOutput{Interaction: *updated}, nil
}

// BulkAct runs one action over the selected ids. Each action is idempotent
// per id, so ids that already carry the target state count as affected
// without changing. Stale ids that no longer exist are skipped. The
// selection is consumed: callers start empty after a successful bulk act.
func (uc *implUseCase) BulkAct(ctx context.Context, sc model.Scope, input triage.BulkInput) (triage.BulkOutput, error) {
	if len(input.IDs) == 0 {
		return triage.BulkOutput{}, triage.ErrEmptySelection
	}

	sel := engine.NewSelection()
	sel.Set(input.IDs)
	ids := sel.IDs()
	defer sel.Clear()

	var (
		affected int64
		err      error
	)
	switch input.Action {
	case triage.BulkActionTag:
		if input.Tag == "" {
			return triage.BulkOutput{}, triage.ErrTagRequired
		}
		affected, err = uc.repo.BulkUpdate(ctx, repository.BulkUpdateOptions{
			WorkspaceID: sc.WorkspaceID,
			IDs:         ids,
			AddTag:      input.Tag,
		})
		if err == nil {
			uc.patchFeed(sc.WorkspaceID, ids, engine.Patch{AddTags: []string{input.Tag}})
		}

	case triage.BulkActionAssign:
		assignee := input.AssignTo
		affected, err = uc.repo.BulkUpdate(ctx, repository.BulkUpdateOptions{
			WorkspaceID: sc.WorkspaceID,
			IDs:         ids,
			AssignedTo:  &assignee,
		})
		if err == nil {
			uc.patchFeed(sc.WorkspaceID, ids, engine.Patch{AssignedTo: &assignee})
		}

	case triage.BulkActionStatus:
		if !isValidStatus(input.Status) {
			return triage.BulkOutput{}, triage.ErrInvalidStatus
		}
		status := input.Status
		affected, err = uc.repo.BulkUpdate(ctx, repository.BulkUpdateOptions{
			WorkspaceID: sc.WorkspaceID,
			IDs:         ids,
			Status:      &status,
		})
		if err == nil {
			uc.patchFeed(sc.WorkspaceID, ids, engine.Patch{Status: &status})
		}

	case triage.BulkActionMarkRead:
		// Marking read acknowledges the item, it does not claim a reply
		// went out. Only unread rows move, into needs_response; items
		// already responded or archived keep their state and count as
		// skipped.
		from := model.StatusUnread
		status := model.StatusNeedsResponse
		affected, err = uc.repo.BulkUpdate(ctx, repository.BulkUpdateOptions{
			WorkspaceID: sc.WorkspaceID,
			IDs:         ids,
			Status:      &status,
			FromStatus:  &from,
		})
		if err == nil {
			feed := uc.feed(sc.WorkspaceID)
			for _, id := range ids {
				if it, ok := feed.Get(id); ok && it.Status == model.StatusUnread {
					feed.UpdateInteraction(id, engine.Patch{Status: &status})
				}
			}
		}

	case triage.BulkActionDelete:
		affected, err = uc.repo.BulkDelete(ctx, sc.WorkspaceID, ids)
		if err == nil {
			uc.feed(sc.WorkspaceID).Remove(ids)
		}

	default:
		return triage.BulkOutput{}, triage.ErrInvalidBulkAction
	}

	if err != nil {
		uc.l.Errorf(ctx, "triage.usecase.BulkAct: Failed to apply %s: %v", input.Action, err)
		return triage.BulkOutput{}, triage.ErrUpdateFailed
	}

	uc.publishAudit(ctx, sc, "bulk_"+input.Action, ids)

	return triage.BulkOutput{
		Affected: affected,
		Skipped:  len(ids) - int(affected),
	}, nil
}

// patchFeed mirrors a committed bulk write onto the cached feed.
func (uc *implUseCase) patchFeed(workspaceID string, ids []string, patch engine.Patch) {
	feed := uc.feed(workspaceID)
	for _, id := range ids {
		feed.UpdateInteraction(id, patch)
	}
}

func isValidStatus(s model.InteractionStatus) bool {
	switch s {
	case model.StatusUnread, model.StatusNeedsResponse, model.StatusResponded, model.StatusArchived:
		return true
	}
	return false
}

type auditEvent struct {
	Action         string    `json:"action"`
	WorkspaceID    string    `json:"workspace_id"`
	UserID         string    `json:"user_id"`
	InteractionIDs []string  `json:"interaction_ids"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// publishAudit emits a triage audit event. Audit is best effort: a broker
// hiccup never fails the user-facing write.
func (uc *implUseCase) publishAudit(ctx context.Context, sc model.Scope, action string, ids []string) {
	if uc.producer == nil {
		return
	}

	event := auditEvent{
		Action:         action,
		WorkspaceID:    sc.WorkspaceID,
		UserID:         sc.UserID,
		InteractionIDs: ids,
		OccurredAt:     time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "triage.usecase.publishAudit: Failed to marshal event: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(sc.WorkspaceID), data); err != nil {
		uc.l.Warnf(ctx, "triage.usecase.publishAudit: Failed to publish event: %v", err)
	}
}
