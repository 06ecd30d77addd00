package repository

import (
	"context"

	"engagement-srv/internal/demo"
)

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	GetSeedJob(ctx context.Context, workspaceID string) (*demo.SeedJob, error)
	SaveSeedJob(ctx context.Context, job demo.SeedJob) error
}
