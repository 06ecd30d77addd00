package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	suggestionPrefix = "suggestions:"
	suggestionTTL    = 7 * 24 * time.Hour
)

// AppendSuggestion - Push a draft onto the interaction's history list.
func (r *implRepository) AppendSuggestion(ctx context.Context, interactionID, draft string) error {
	key := fmt.Sprintf("%s%s", suggestionPrefix, interactionID)
	client := r.redis.GetClient()

	if err := client.RPush(ctx, key, draft).Err(); err != nil {
		r.l.Errorf(ctx, "triage.repository.redis.AppendSuggestion: Failed to push draft: %v", err)
		return err
	}
	if err := client.Expire(ctx, key, suggestionTTL).Err(); err != nil {
		r.l.Errorf(ctx, "triage.repository.redis.AppendSuggestion: Failed to refresh TTL: %v", err)
		return err
	}
	return nil
}

// GetSuggestions - Full draft history, oldest first.
func (r *implRepository) GetSuggestions(ctx context.Context, interactionID string) ([]string, error) {
	key := fmt.Sprintf("%s%s", suggestionPrefix, interactionID)

	drafts, err := r.redis.GetClient().LRange(ctx, key, 0, -1).Result()
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.redis.GetSuggestions: Failed to read history: %v", err)
		return nil, err
	}
	return drafts, nil
}
