package polling

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetConfig(ctx context.Context, sc model.Scope) (ConfigOutput, error)
	SetConfig(ctx context.Context, sc model.Scope, input SetConfigInput) (ConfigOutput, error)
	GetStats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
