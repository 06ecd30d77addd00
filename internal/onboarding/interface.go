package onboarding

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetStatus(ctx context.Context, sc model.Scope) (StatusOutput, error)
	CompleteStep(ctx context.Context, sc model.Scope, input CompleteStepInput) (StatusOutput, error)
}
