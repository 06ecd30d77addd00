package polling

import "errors"

var (
	ErrIntervalOutOfRange = errors.New("sync interval out of range")
	ErrStatsUnavailable   = errors.New("polling stats unavailable")
)
