package repository

import (
	"engagement-srv/internal/model"
)

type ListApprovalsOptions struct {
	WorkspaceID string
	Status      model.ApprovalStatus
	Urgent      *bool
	Limit       int64
	Offset      int64
}

type CreateApprovalOptions struct {
	ID          string
	WorkspaceID string
	ChannelID   string
	ResponseID  string
	Payload     model.ApprovalPayload
	Priority    int
	Urgent      bool
}

type ResolvePendingOptions struct {
	ApprovalID  string
	WorkspaceID string
	Status      model.ApprovalStatus
}

type UpdateResponseTextOptions struct {
	ApprovalID   string
	WorkspaceID  string
	ResponseText string
}
