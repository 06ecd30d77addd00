package approval

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

const (
	ResolutionApprove = "approve"
	ResolutionReject  = "reject"
)

type ListInput struct {
	Status   model.ApprovalStatus
	Urgent   *bool
	PagQuery paginator.PaginateQuery
}

type ListOutput struct {
	Items      []model.ApprovalItem
	Pagination paginator.Paginator
}

type ResolveInput struct {
	ApprovalID string
	Resolution string
}

type EditInput struct {
	ApprovalID   string
	ResponseText string
}

type ItemOutput struct {
	Item model.ApprovalItem
}

type BulkResolveInput struct {
	IDs        []string
	Resolution string
}

type BulkResolveOutput struct {
	Affected int
	Skipped  int
}
