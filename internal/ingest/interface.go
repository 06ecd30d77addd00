package ingest

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// IngestEvent upserts one synced interaction and runs the workspace's
	// automation rules against it.
	IngestEvent(ctx context.Context, input EventInput) (EventOutput, error)
}
