package approval

import "errors"

var (
	ErrApprovalNotFound  = errors.New("approval item not found")
	ErrAlreadyResolved   = errors.New("approval item already resolved")
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrEmptySelection    = errors.New("selection is empty")
	ErrEditNotPending    = errors.New("only pending items can be edited")
	ErrResolveFailed     = errors.New("failed to resolve approval item")
)
