package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage/repository"
)

const viewPrefix = "saved_views:"

// SaveView - Store the preset in the user's view hash.
func (r *implRepository) SaveView(ctx context.Context, view model.SavedView) error {
	key := fmt.Sprintf("%s%s", viewPrefix, view.UserID)

	data, err := json.Marshal(view)
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.redis.SaveView: Failed to marshal view: %v", err)
		return repository.ErrViewEncode
	}

	if err := r.redis.GetClient().HSet(ctx, key, view.ID, data).Err(); err != nil {
		r.l.Errorf(ctx, "triage.repository.redis.SaveView: Failed to save view: %v", err)
		return err
	}
	return nil
}

// GetViews - All saved presets for a user.
func (r *implRepository) GetViews(ctx context.Context, userID string) ([]model.SavedView, error) {
	key := fmt.Sprintf("%s%s", viewPrefix, userID)

	entries, err := r.redis.GetClient().HGetAll(ctx, key).Result()
	if err != nil {
		r.l.Errorf(ctx, "triage.repository.redis.GetViews: Failed to read views: %v", err)
		return nil, err
	}

	views := make([]model.SavedView, 0, len(entries))
	for _, raw := range entries {
		var view model.SavedView
		if err := json.Unmarshal([]byte(raw), &view); err != nil {
			r.l.Errorf(ctx, "triage.repository.redis.GetViews: Failed to unmarshal view: %v", err)
			continue
		}
		views = append(views, view)
	}
	return views, nil
}
