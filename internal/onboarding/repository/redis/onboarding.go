package redis

import (
	"context"
	"fmt"
	"time"
)

const progressPrefix = "onboarding:"

func (r *implRepository) GetProgress(ctx context.Context, userID string) (map[string]time.Time, error) {
	key := fmt.Sprintf("%s%s", progressPrefix, userID)

	raw, err := r.redis.GetClient().HGetAll(ctx, key).Result()
	if err != nil {
		r.l.Errorf(ctx, "onboarding.repository.redis.GetProgress: Failed to read progress: %v", err)
		return nil, err
	}

	progress := make(map[string]time.Time, len(raw))
	for step, ts := range raw {
		at, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			// A malformed entry should not hide the rest of the progress.
			r.l.Warnf(ctx, "onboarding.repository.redis.GetProgress: Skipping malformed timestamp for step %s: %v", step, err)
			continue
		}
		progress[step] = at
	}
	return progress, nil
}

func (r *implRepository) MarkStepDone(ctx context.Context, userID, step string, at time.Time) error {
	key := fmt.Sprintf("%s%s", progressPrefix, userID)

	if err := r.redis.GetClient().HSet(ctx, key, step, at.Format(time.RFC3339)).Err(); err != nil {
		r.l.Errorf(ctx, "onboarding.repository.redis.MarkStepDone: Failed to mark step: %v", err)
		return err
	}
	return nil
}
