package repository

import (
	"context"
	"time"
)

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	// GetProgress returns the completion time of every finished step for a user.
	GetProgress(ctx context.Context, userID string) (map[string]time.Time, error)
	MarkStepDone(ctx context.Context, userID, step string, at time.Time) error
}
