package repository

import (
	"context"

	"engagement-srv/internal/model"
	"engagement-srv/internal/polling"
)

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	GetConfig(ctx context.Context, workspaceID string) (*polling.Config, error)
	SaveConfig(ctx context.Context, workspaceID string, cfg polling.Config) error
	GetCachedStats(ctx context.Context, workspaceID string) (*polling.Stats, error)
	SaveCachedStats(ctx context.Context, workspaceID string, stats polling.Stats) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CountByStatus(ctx context.Context, workspaceID string) (map[model.InteractionStatus]int64, error)
}
