package usecase

import (
	"engagement-srv/internal/admin"
	"engagement-srv/internal/admin/repository"
	"engagement-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates a new admin UseCase implementation.
func New(repo repository.PostgresRepository, l log.Logger) admin.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
