package ingest

import "errors"

var (
	ErrInvalidEvent    = errors.New("sync event is missing required fields")
	ErrUnknownPlatform = errors.New("sync event has an unknown platform")
)
