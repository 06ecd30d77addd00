package demo

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Seed(ctx context.Context, sc model.Scope, input SeedInput) (SeedOutput, error)
	Status(ctx context.Context, sc model.Scope) (StatusOutput, error)
}
