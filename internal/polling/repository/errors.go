package repository

import "errors"

var (
	ErrConfigNotFound = errors.New("repository: polling config not found")
	ErrStatsNotCached = errors.New("repository: polling stats not cached")
)
