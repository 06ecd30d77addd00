package usecase

import (
	"engagement-srv/internal/onboarding"
	"engagement-srv/internal/onboarding/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo repository.RedisRepository
	l    log.Logger
}

// New creates a new onboarding UseCase implementation.
func New(repo repository.RedisRepository, l log.Logger) onboarding.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
