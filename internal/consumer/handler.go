package consumer

import (
	"context"
	"fmt"

	approvalPostgre "engagement-srv/internal/approval/repository/postgre"
	automationPostgre "engagement-srv/internal/automation/repository/postgre"
	ingestConsumer "engagement-srv/internal/ingest/delivery/kafka/consumer"
	ingestUsecase "engagement-srv/internal/ingest/usecase"
	triagePostgre "engagement-srv/internal/triage/repository/postgre"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	ingestConsumer *ingestConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	interactionRepo := triagePostgre.New(srv.postgresDB, srv.l)
	ruleRepo := automationPostgre.New(srv.postgresDB, srv.l)
	approvalRepo := approvalPostgre.New(srv.postgresDB, srv.l)

	ingestUC := ingestUsecase.New(
		interactionRepo,
		ruleRepo,
		approvalRepo,
		srv.geminiClient,
		srv.kafkaProducer,
		srv.l,
		ingestUsecase.Config{AuditTopic: srv.kafkaConfig.AuditTopic},
	)

	ingestCons, err := ingestConsumer.New(ingestConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     ingestUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest consumer: %w", err)
	}

	srv.l.Infof(ctx, "Ingest domain initialized")

	return &domainConsumers{
		ingestConsumer: ingestCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.ingestConsumer.ConsumeEngagementSync(ctx); err != nil {
		return fmt.Errorf("failed to start ingest consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.ingestConsumer != nil {
		if err := consumers.ingestConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing ingest consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
