package repository

import (
	"time"

	"engagement-srv/internal/model"
)

type ListInteractionsOptions struct {
	WorkspaceID string
	Platforms   []model.Platform
	Sentiment   model.Sentiment
	Status      model.InteractionStatus
	Search      string
	DateFrom    *time.Time
	DateTo      *time.Time
	Sort        model.SortOrder
	Limit       int64
	Offset      int64
}

type UpdateInteractionOptions struct {
	ID         string
	Status     *model.InteractionStatus
	Sentiment  *model.Sentiment
	Priority   *model.Priority
	AssignedTo *string
	Tags       []string // full replacement set after patch merge
}

type BulkUpdateOptions struct {
	WorkspaceID string
	IDs         []string
	Status      *model.InteractionStatus
	FromStatus  *model.InteractionStatus // when set, only rows in this status move
	AssignedTo  *string
	AddTag      string
}

type UpsertInteractionOptions struct {
	Interaction model.Interaction
}
