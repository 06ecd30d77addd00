package consumer

import (
	"engagement-srv/internal/ingest"
	kafkaDelivery "engagement-srv/internal/ingest/delivery/kafka"
	"engagement-srv/internal/model"
)

// toEventInput maps the Kafka message DTO to the usecase input.
func toEventInput(m kafkaDelivery.SyncEventMessage) ingest.EventInput {
	return ingest.EventInput{
		WorkspaceID:     m.WorkspaceID,
		Platform:        model.Platform(m.Platform),
		ExternalID:      m.ExternalID,
		Kind:            model.InteractionKind(m.Kind),
		Content:         m.Content,
		AuthorName:      m.AuthorName,
		AuthorAvatarURL: m.AuthorAvatarURL,
		AuthorFollowers: m.AuthorFollowers,
		CreatedAt:       m.CreatedAt,
		Sentiment:       model.Sentiment(m.Sentiment),
		Rating:          m.Rating,
		ReplyCount:      m.ReplyCount,
	}
}
