package usecase

import (
	"engagement-srv/internal/polling"
	"engagement-srv/internal/polling/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	redisRepo repository.RedisRepository
	l         log.Logger
}

// New creates a new polling UseCase implementation.
func New(repo repository.PostgresRepository, redisRepo repository.RedisRepository, l log.Logger) polling.UseCase {
	return &implUseCase{
		repo:      repo,
		redisRepo: redisRepo,
		l:         l,
	}
}
