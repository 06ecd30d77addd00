package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"engagement-srv/internal/demo"
	"engagement-srv/internal/demo/repository"
)

const (
	seedJobPrefix = "demo_seed:"
	seedJobTTL    = 24 * time.Hour
)

func (r *implRepository) GetSeedJob(ctx context.Context, workspaceID string) (*demo.SeedJob, error) {
	key := fmt.Sprintf("%s%s", seedJobPrefix, workspaceID)

	data, err := r.redis.GetClient().Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrSeedJobNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "demo.repository.redis.GetSeedJob: Failed to read seed job: %v", err)
		return nil, err
	}

	var job demo.SeedJob
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		r.l.Errorf(ctx, "demo.repository.redis.GetSeedJob: Failed to unmarshal seed job: %v", err)
		return nil, err
	}
	return &job, nil
}

func (r *implRepository) SaveSeedJob(ctx context.Context, job demo.SeedJob) error {
	key := fmt.Sprintf("%s%s", seedJobPrefix, job.WorkspaceID)

	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := r.redis.GetClient().Set(ctx, key, data, seedJobTTL).Err(); err != nil {
		r.l.Errorf(ctx, "demo.repository.redis.SaveSeedJob: Failed to save seed job: %v", err)
		return err
	}
	return nil
}
