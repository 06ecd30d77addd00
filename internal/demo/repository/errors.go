package repository

import "errors"

var (
	ErrSeedJobNotFound = errors.New("repository: seed job not found")
)
