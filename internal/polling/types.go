package polling

import "engagement-srv/internal/model"

// Sync interval bounds, in seconds.
const (
	MinIntervalSeconds     = 30
	MaxIntervalSeconds     = 3600
	DefaultIntervalSeconds = 300
)

// Config is the per-workspace platform sync configuration.
type Config struct {
	IntervalSeconds int  `json:"interval_seconds"`
	Enabled         bool `json:"enabled"`
}

// DefaultConfig is used for workspaces that never changed their settings.
func DefaultConfig() Config {
	return Config{
		IntervalSeconds: DefaultIntervalSeconds,
		Enabled:         true,
	}
}

type SetConfigInput struct {
	IntervalSeconds int
	Enabled         bool
}

type ConfigOutput struct {
	Config Config
}

// Stats summarizes the sync state of a workspace feed.
type Stats struct {
	Total          int64                             `json:"total"`
	ByStatus       map[model.InteractionStatus]int64 `json:"by_status"`
	PendingTriage  int64                             `json:"pending_triage"`
	LastComputedAt string                            `json:"last_computed_at"`
}

type StatsOutput struct {
	Stats Stats
}
