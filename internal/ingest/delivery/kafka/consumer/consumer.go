package consumer

import (
	"context"

	kafkaDelivery "engagement-srv/internal/ingest/delivery/kafka"
)

// ConsumeEngagementSync starts consuming synced interaction events.
func (c *Consumer) ConsumeEngagementSync(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupEngagementSync)
	if err != nil {
		return err
	}
	c.syncGroup = group

	handler := &syncEventHandler{
		consumer: c,
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicEngagementSync}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicEngagementSync)

	return nil
}
