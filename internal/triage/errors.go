package triage

import "errors"

var (
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrEmptySelection      = errors.New("selection is empty")
	ErrInvalidBulkAction   = errors.New("invalid bulk action")
	ErrInvalidStatus       = errors.New("invalid interaction status")
	ErrTagRequired         = errors.New("tag is required")
	ErrStaleRefresh        = errors.New("refresh superseded by a newer request")
	ErrSuggestFailed       = errors.New("failed to generate reply suggestion")
	ErrViewNameRequired    = errors.New("view name is required")
	ErrUpdateFailed        = errors.New("failed to update interaction")
)
