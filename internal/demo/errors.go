package demo

import "errors"

var (
	ErrSeedInProgress = errors.New("a seed run is already in progress")
	ErrInvalidCount   = errors.New("invalid seed count")
	ErrNoSeedJob      = errors.New("no seed job for this workspace")
)
