package admin

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRequired    = errors.New("email is required")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrNotAdmin         = errors.New("caller is not an admin")
	ErrUserCreateFailed = errors.New("failed to create user")
)
