package usecase

import (
	"engagement-srv/internal/export"
	"engagement-srv/internal/export/repository"
	triageRepo "engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/log"
	"engagement-srv/pkg/minio"
)

type Config struct {
	Bucket string
}

type implUseCase struct {
	repo         repository.PostgresRepository
	interactions triageRepo.PostgresRepository
	storage      minio.MinIO
	l            log.Logger
	config       Config
}

// New creates a new export UseCase implementation.
func New(repo repository.PostgresRepository, interactions triageRepo.PostgresRepository, storage minio.MinIO, l log.Logger, config Config) export.UseCase {
	if config.Bucket == "" {
		config.Bucket = "engagement-exports"
	}
	return &implUseCase{
		repo:         repo,
		interactions: interactions,
		storage:      storage,
		l:            l,
		config:       config,
	}
}
