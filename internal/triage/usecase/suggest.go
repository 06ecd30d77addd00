package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage"
	"engagement-srv/internal/triage/repository"
)

const defaultTone = "friendly"

// Suggest asks the model for a reply draft and appends it to the
// interaction's history. Regenerating never overwrites earlier drafts.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input triage.SuggestInput) (triage.SuggestOutput, error) {
	it, err := uc.repo.GetInteractionByID(ctx, input.InteractionID)
	if err != nil {
		if errors.Is(err, repository.ErrInteractionNotFound) {
			return triage.SuggestOutput{}, triage.ErrInteractionNotFound
		}
		uc.l.Errorf(ctx, "triage.usecase.Suggest: Failed to load interaction: %v", err)
		return triage.SuggestOutput{}, triage.ErrSuggestFailed
	}
	if it.WorkspaceID != sc.WorkspaceID {
		return triage.SuggestOutput{}, triage.ErrInteractionNotFound
	}

	draft := uc.generateDraft(ctx, *it, input.Tone)

	uc.suggestions.Append(input.InteractionID, draft)
	if err := uc.redisRepo.AppendSuggestion(ctx, input.InteractionID, draft); err != nil {
		// History in redis is a convenience copy; the in-process cache
		// already holds the draft.
		uc.l.Warnf(ctx, "triage.usecase.Suggest: Failed to persist draft: %v", err)
	}

	return triage.SuggestOutput{
		InteractionID: input.InteractionID,
		Draft:         draft,
		History:       uc.suggestions.History(input.InteractionID),
	}, nil
}

// SuggestionHistory returns all drafts generated for an interaction, oldest
// first. Redis is the source of truth so history survives restarts.
func (uc *implUseCase) SuggestionHistory(ctx context.Context, sc model.Scope, input triage.SuggestionHistoryInput) (triage.SuggestionHistoryOutput, error) {
	drafts, err := uc.redisRepo.GetSuggestions(ctx, input.InteractionID)
	if err != nil {
		uc.l.Warnf(ctx, "triage.usecase.SuggestionHistory: Failed to read redis history, falling back to cache: %v", err)
		drafts = uc.suggestions.History(input.InteractionID)
	}

	return triage.SuggestionHistoryOutput{
		InteractionID: input.InteractionID,
		Drafts:        drafts,
	}, nil
}

// generateDraft asks Gemini for a reply and falls back to a canned template
// when no model is available or the call fails, so suggestions keep working
// without an API key.
func (uc *implUseCase) generateDraft(ctx context.Context, it model.Interaction, tone string) string {
	if uc.gemini != nil {
		draft, err := uc.gemini.Generate(ctx, buildSuggestPrompt(it, tone))
		if err == nil {
			return strings.TrimSpace(draft)
		}
		uc.l.Warnf(ctx, "triage.usecase.Suggest: Failed to generate draft, using template: %v", err)
	}
	return templateDraft(it)
}

func templateDraft(it model.Interaction) string {
	name := it.Author.Name
	if name == "" {
		name = "there"
	}

	switch it.Sentiment {
	case model.SentimentNegative:
		return fmt.Sprintf("Hi %s, we're sorry to hear about your experience. We'd like to make this right - could you send us a message with the details?", name)
	case model.SentimentPositive:
		return fmt.Sprintf("Thanks so much, %s! We really appreciate you taking the time to share this.", name)
	default:
		return fmt.Sprintf("Hi %s, thanks for reaching out! We'll get back to you shortly.", name)
	}
}

func buildSuggestPrompt(it model.Interaction, tone string) string {
	if tone == "" {
		tone = defaultTone
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are replying on behalf of a brand to a %s %s.\n", it.Platform, it.Kind)
	fmt.Fprintf(&b, "Author: %s\n", it.Author.Name)
	if it.Rating != nil {
		fmt.Fprintf(&b, "Rating: %d/5\n", *it.Rating)
	}
	fmt.Fprintf(&b, "Sentiment: %s\n", it.Sentiment)
	fmt.Fprintf(&b, "Message:\n%s\n\n", it.Content)
	fmt.Fprintf(&b, "Write a concise reply in a %s tone. Do not include a signature.", tone)
	return b.String()
}
