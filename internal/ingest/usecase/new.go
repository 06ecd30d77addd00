package usecase

import (
	approvalRepo "engagement-srv/internal/approval/repository"
	automationRepo "engagement-srv/internal/automation/repository"
	"engagement-srv/internal/ingest"
	triageRepo "engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/gemini"
	"engagement-srv/pkg/kafka"
	"engagement-srv/pkg/log"
)

type Config struct {
	AuditTopic string
}

type implUseCase struct {
	interactions triageRepo.PostgresRepository
	rules        automationRepo.PostgresRepository
	approvals    approvalRepo.PostgresRepository
	gemini       gemini.IGemini
	producer     kafka.IProducer
	l            log.Logger
	config       Config
}

// New creates a new ingest UseCase implementation.
func New(
	interactions triageRepo.PostgresRepository,
	rules automationRepo.PostgresRepository,
	approvals approvalRepo.PostgresRepository,
	geminiClient gemini.IGemini,
	producer kafka.IProducer,
	l log.Logger,
	config Config,
) ingest.UseCase {
	if config.AuditTopic == "" {
		config.AuditTopic = "engagement.audit"
	}
	return &implUseCase{
		interactions: interactions,
		rules:        rules,
		approvals:    approvals,
		gemini:       geminiClient,
		producer:     producer,
		l:            l,
		config:       config,
	}
}
