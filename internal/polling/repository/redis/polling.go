package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"engagement-srv/internal/polling"
	"engagement-srv/internal/polling/repository"
)

const (
	configPrefix  = "polling_config:"
	statsPrefix   = "polling_stats:"
	statsCacheTTL = 30 * time.Second
)

func (r *implRepository) GetConfig(ctx context.Context, workspaceID string) (*polling.Config, error) {
	key := fmt.Sprintf("%s%s", configPrefix, workspaceID)

	data, err := r.redis.GetClient().Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrConfigNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "polling.repository.redis.GetConfig: Failed to read config: %v", err)
		return nil, err
	}

	var cfg polling.Config
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		r.l.Errorf(ctx, "polling.repository.redis.GetConfig: Failed to unmarshal config: %v", err)
		return nil, err
	}
	return &cfg, nil
}

func (r *implRepository) SaveConfig(ctx context.Context, workspaceID string, cfg polling.Config) error {
	key := fmt.Sprintf("%s%s", configPrefix, workspaceID)

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	// Config has no TTL; it lives until changed.
	if err := r.redis.GetClient().Set(ctx, key, data, 0).Err(); err != nil {
		r.l.Errorf(ctx, "polling.repository.redis.SaveConfig: Failed to save config: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) GetCachedStats(ctx context.Context, workspaceID string) (*polling.Stats, error) {
	key := fmt.Sprintf("%s%s", statsPrefix, workspaceID)

	data, err := r.redis.GetClient().Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrStatsNotCached
	}
	if err != nil {
		r.l.Errorf(ctx, "polling.repository.redis.GetCachedStats: Failed to read stats: %v", err)
		return nil, err
	}

	var stats polling.Stats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		r.l.Errorf(ctx, "polling.repository.redis.GetCachedStats: Failed to unmarshal stats: %v", err)
		return nil, err
	}
	return &stats, nil
}

func (r *implRepository) SaveCachedStats(ctx context.Context, workspaceID string, stats polling.Stats) error {
	key := fmt.Sprintf("%s%s", statsPrefix, workspaceID)

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if err := r.redis.GetClient().Set(ctx, key, data, statsCacheTTL).Err(); err != nil {
		r.l.Errorf(ctx, "polling.repository.redis.SaveCachedStats: Failed to cache stats: %v", err)
		return err
	}
	return nil
}
