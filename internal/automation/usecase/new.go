package usecase

import (
	"engagement-srv/internal/automation"
	"engagement-srv/internal/automation/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates a new automation UseCase implementation.
func New(repo repository.PostgresRepository, l log.Logger) automation.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
