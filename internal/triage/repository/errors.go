package repository

import "errors"

var (
	ErrInteractionNotFound = errors.New("repository: interaction not found")
	ErrInteractionUpdate   = errors.New("repository: failed to update interaction")
	ErrInteractionUpsert   = errors.New("repository: failed to upsert interaction")
	ErrViewEncode          = errors.New("repository: failed to encode saved view")
)
