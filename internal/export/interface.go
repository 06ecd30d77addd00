package export

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (ExportOutput, error)
	Get(ctx context.Context, sc model.Scope, exportID string) (ExportOutput, error)
	Download(ctx context.Context, sc model.Scope, exportID string) (DownloadOutput, error)
}
