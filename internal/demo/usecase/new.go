package usecase

import (
	"engagement-srv/internal/demo"
	"engagement-srv/internal/demo/repository"
	triageRepo "engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	redisRepo    repository.RedisRepository
	interactions triageRepo.PostgresRepository
	l            log.Logger
}

// New creates a new demo UseCase implementation. Seeded interactions go
// through the same repository the triage domain reads from.
func New(redisRepo repository.RedisRepository, interactions triageRepo.PostgresRepository, l log.Logger) demo.UseCase {
	return &implUseCase{
		redisRepo:    redisRepo,
		interactions: interactions,
		l:            l,
	}
}
