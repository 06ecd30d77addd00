package kafka

import "time"

// SyncEventMessage is one synced interaction on engagement.sync.
type SyncEventMessage struct {
	WorkspaceID     string    `json:"workspace_id"`
	Platform        string    `json:"platform"`
	ExternalID      string    `json:"external_id"`
	Kind            string    `json:"kind"`
	Content         string    `json:"content"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarURL string    `json:"author_avatar_url,omitempty"`
	AuthorFollowers int       `json:"author_followers"`
	CreatedAt       time.Time `json:"created_at"`
	Sentiment       string    `json:"sentiment"`
	Rating          *int      `json:"rating,omitempty"`
	ReplyCount      int       `json:"reply_count"`
}
