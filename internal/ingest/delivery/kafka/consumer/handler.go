package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type syncEventHandler struct {
	consumer *Consumer
}

func (h *syncEventHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *syncEventHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *syncEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleSyncEventMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "ingest.delivery.kafka.consumer.ConsumeEngagementSync: Failed to process sync event: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
