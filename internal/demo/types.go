package demo

import "time"

const (
	DefaultSeedCount = 25
	MaxSeedCount     = 200
)

const (
	SeedStateRunning   = "running"
	SeedStateCompleted = "completed"
	SeedStateFailed    = "failed"
)

// SeedJob is the persisted state of one seed run, polled by the UI.
type SeedJob struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	State       string     `json:"state"`
	Requested   int        `json:"requested"`
	Seeded      int        `json:"seeded"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

type SeedInput struct {
	Count int
}

type SeedOutput struct {
	Job SeedJob
}

type StatusOutput struct {
	Job *SeedJob
}
