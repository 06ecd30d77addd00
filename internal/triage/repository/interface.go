package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name InteractionRepository
type InteractionRepository interface {
	ListInteractions(ctx context.Context, opts ListInteractionsOptions) ([]model.Interaction, int64, error)
	GetInteractionByID(ctx context.Context, id string) (*model.Interaction, error)
	UpdateInteraction(ctx context.Context, opts UpdateInteractionOptions) (*model.Interaction, error)
	BulkUpdate(ctx context.Context, opts BulkUpdateOptions) (int64, error)
	BulkDelete(ctx context.Context, workspaceID string, ids []string) (int64, error)
	UpsertInteraction(ctx context.Context, opts UpsertInteractionOptions) (*model.Interaction, bool, error)
	CountByStatus(ctx context.Context, workspaceID string) (map[model.InteractionStatus]int64, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	InteractionRepository
}

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	AppendSuggestion(ctx context.Context, interactionID, draft string) error
	GetSuggestions(ctx context.Context, interactionID string) ([]string, error)
	SaveView(ctx context.Context, view model.SavedView) error
	GetViews(ctx context.Context, userID string) ([]model.SavedView, error)
}
