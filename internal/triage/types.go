package triage

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

const (
	BulkActionTag      = "tag"
	BulkActionAssign   = "assign"
	BulkActionStatus   = "status"
	BulkActionMarkRead = "mark_read"
	BulkActionDelete   = "delete"
)

type ListInput struct {
	Filter   model.FilterState
	Sort     model.SortOrder
	PagQuery paginator.PaginateQuery
}

type ListOutput struct {
	Interactions []model.Interaction
	Pagination   paginator.Paginator
}

type UpdateInput struct {
	InteractionID string
	Status        *model.InteractionStatus
	Sentiment     *model.Sentiment
	Priority      *model.Priority
	AssignedTo    *string
	AddTags       []string
	RemoveTags    []string
}

type InteractionOutput struct {
	Interaction model.Interaction
}

type BulkInput struct {
	Action   string
	IDs      []string
	Tag      string
	AssignTo string
	Status   model.InteractionStatus
}

type BulkOutput struct {
	Affected int64
	Skipped  int
}

type SuggestInput struct {
	InteractionID string
	Tone          string
}

type SuggestOutput struct {
	InteractionID string
	Draft         string
	History       []string
}

type SuggestionHistoryInput struct {
	InteractionID string
}

type SuggestionHistoryOutput struct {
	InteractionID string
	Drafts        []string
}

type RefreshInput struct {
	Filter   model.FilterState
	Sort     model.SortOrder
	PagQuery paginator.PaginateQuery
}

type SaveViewInput struct {
	Name   string
	Filter model.FilterState
	Sort   model.SortOrder
}

type ViewOutput struct {
	View model.SavedView
}
