package usecase

import (
	"engagement-srv/internal/approval"
	"engagement-srv/internal/approval/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates a new approval UseCase implementation.
func New(repo repository.PostgresRepository, l log.Logger) approval.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
