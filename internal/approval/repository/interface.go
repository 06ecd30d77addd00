package repository

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name ApprovalRepository
type ApprovalRepository interface {
	ListApprovals(ctx context.Context, opts ListApprovalsOptions) ([]model.ApprovalItem, int64, error)
	GetApprovalByID(ctx context.Context, id string) (*model.ApprovalItem, error)
	CreateApproval(ctx context.Context, opts CreateApprovalOptions) (*model.ApprovalItem, error)
	// ResolvePending flips a pending item to a terminal status. Returns
	// ErrNotPending when the row exists but is already resolved.
	ResolvePending(ctx context.Context, opts ResolvePendingOptions) (*model.ApprovalItem, error)
	// UpdateResponseText edits the drafted reply of a pending item.
	UpdateResponseText(ctx context.Context, opts UpdateResponseTextOptions) (*model.ApprovalItem, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ApprovalRepository
}
