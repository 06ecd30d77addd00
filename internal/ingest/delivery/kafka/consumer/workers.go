package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "engagement-srv/internal/ingest/delivery/kafka"
	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"
)

// handleSyncEventMessage receives a message, normalizes scope + input, and
// delegates to the usecase.
func (c *Consumer) handleSyncEventMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "ingest.delivery.kafka.consumer.handleSyncEventMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.SyncEventMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "ingest.delivery.kafka.consumer.handleSyncEventMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	if message.WorkspaceID == "" || message.ExternalID == "" || message.Platform == "" {
		c.l.Warnf(ctx, "ingest.delivery.kafka.consumer.handleSyncEventMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	input := toEventInput(message)

	sc := model.Scope{
		UserID: "system",
		Role:   "system",
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	output, err := c.uc.IngestEvent(ctx, input)
	if err != nil {
		c.l.Errorf(ctx, "ingest.delivery.kafka.consumer.handleSyncEventMessage: usecase IngestEvent failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "ingest.delivery.kafka.consumer.handleSyncEventMessage: Processed %s/%s: inserted=%v, matched=%d, approvals=%d",
		message.Platform, message.ExternalID, output.Inserted, len(output.MatchedRules), output.ApprovalsCreated)
	return nil
}
