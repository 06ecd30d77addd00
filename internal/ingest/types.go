package ingest

import (
	"time"

	"engagement-srv/internal/model"
)

// EventInput is one synced comment, review, or mention coming off the
// platform sync pipeline.
type EventInput struct {
	WorkspaceID     string
	Platform        model.Platform
	ExternalID      string
	Kind            model.InteractionKind
	Content         string
	AuthorName      string
	AuthorAvatarURL string
	AuthorFollowers int
	CreatedAt       time.Time
	Sentiment       model.Sentiment
	Rating          *int
	ReplyCount      int
}

type EventOutput struct {
	Interaction      model.Interaction
	Inserted         bool
	MatchedRules     []string
	ApprovalsCreated int
}
