package repository

import "errors"

var (
	ErrApprovalNotFound = errors.New("repository: approval item not found")
	ErrNotPending       = errors.New("repository: approval item is not pending")
	ErrApprovalCreate   = errors.New("repository: failed to create approval item")
	ErrApprovalUpdate   = errors.New("repository: failed to update approval item")
)
