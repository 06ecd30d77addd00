package repository

import "errors"

var (
	ErrUserNotFound   = errors.New("repository: user not found")
	ErrDuplicateEmail = errors.New("repository: email already registered")
	ErrUserCreate     = errors.New("repository: failed to create user")
	ErrUserUpdate     = errors.New("repository: failed to update user")
)
