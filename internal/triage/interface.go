package triage

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (InteractionOutput, error)
	BulkAct(ctx context.Context, sc model.Scope, input BulkInput) (BulkOutput, error)
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)
	SuggestionHistory(ctx context.Context, sc model.Scope, input SuggestionHistoryInput) (SuggestionHistoryOutput, error)
	Refresh(ctx context.Context, sc model.Scope, input RefreshInput) (ListOutput, error)
	SaveView(ctx context.Context, sc model.Scope, input SaveViewInput) (ViewOutput, error)
	ListViews(ctx context.Context, sc model.Scope) ([]ViewOutput, error)
}
