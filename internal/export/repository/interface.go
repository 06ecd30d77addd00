package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name ExportRepository
type ExportRepository interface {
	CreateExport(ctx context.Context, opts CreateExportOptions) (*model.Export, error)
	GetExportByID(ctx context.Context, workspaceID, id string) (*model.Export, error)
	MarkCompleted(ctx context.Context, opts MarkCompletedOptions) error
	MarkFailed(ctx context.Context, id, errorMessage string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ExportRepository
}
