package model

import "time"

// SentimentAll and StatusAll disable the respective filter stage.
const (
	SentimentAll Sentiment         = "all"
	StatusAll    InteractionStatus = "all"
)

// FilterState is the compound filter applied to an interaction list.
// Zero value passes everything through.
type FilterState struct {
	Platforms []Platform        `json:"platforms,omitempty"`
	Sentiment Sentiment         `json:"sentiment,omitempty"`
	Status    InteractionStatus `json:"status,omitempty"`
	Search    string            `json:"search,omitempty"`
	DateFrom  *time.Time        `json:"date_from,omitempty"`
	DateTo    *time.Time        `json:"date_to,omitempty"`
}

// IsZero reports whether no filter criterion is active.
func (f FilterState) IsZero() bool {
	return len(f.Platforms) == 0 &&
		(f.Sentiment == "" || f.Sentiment == SentimentAll) &&
		(f.Status == "" || f.Status == StatusAll) &&
		f.Search == "" &&
		f.DateFrom == nil && f.DateTo == nil
}

// SortOrder is a presentation ordering, applied separately from filtering.
type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortPriority   SortOrder = "priority"
	SortEngagement SortOrder = "engagement"
)

// SavedView is a persisted filter preset.
type SavedView struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Name      string      `json:"name"`
	Filter    FilterState `json:"filter"`
	Sort      SortOrder   `json:"sort"`
	CreatedAt time.Time   `json:"created_at"`
}
