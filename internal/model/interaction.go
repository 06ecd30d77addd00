package model

import "time"

// Platform is the social platform an interaction came from.
type Platform string

const (
	PlatformGoogle    Platform = "google"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
)

// InteractionKind distinguishes comments, reviews, and mentions.
type InteractionKind string

const (
	KindComment InteractionKind = "comment"
	KindReview  InteractionKind = "review"
	KindMention InteractionKind = "mention"
)

// Sentiment is the analyzed sentiment of an interaction.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentMixed    Sentiment = "mixed"
)

// InteractionStatus is the triage status of an interaction.
type InteractionStatus string

const (
	StatusUnread        InteractionStatus = "unread"
	StatusNeedsResponse InteractionStatus = "needs_response"
	StatusResponded     InteractionStatus = "responded"
	StatusArchived      InteractionStatus = "archived"
)

// Priority marks interactions that need attention first.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Author is the person behind an interaction.
type Author struct {
	Name      string `json:"name" db:"author_name"`
	AvatarURL string `json:"avatar_url" db:"author_avatar_url"`
	Followers int    `json:"followers" db:"author_followers"`
}

// Interaction is a single audience touchpoint (comment, review, mention)
// surfaced for triage.
type Interaction struct {
	ID          string
	WorkspaceID string
	ExternalID  string
	Platform    Platform
	Kind        InteractionKind
	Content     string
	Author      Author
	CreatedAt   time.Time
	Sentiment   Sentiment
	Status      InteractionStatus
	Priority    Priority
	Tags        []string
	AssignedTo  string
	// Rating is set only for review-kind interactions (1..5).
	Rating     *int
	ReplyCount int
}

// HasTag reports whether the interaction already carries the tag.
func (i Interaction) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EngagementScore orders interactions by audience reach for the
// "engagement" sort. Follower count dominates, replies break ties.
func (i Interaction) EngagementScore() int {
	return i.Author.Followers + i.ReplyCount*100
}

// ValidPlatforms lists every supported platform.
func ValidPlatforms() []Platform {
	return []Platform{
		PlatformGoogle, PlatformYouTube, PlatformInstagram,
		PlatformTikTok, PlatformFacebook, PlatformTwitter,
	}
}

// IsValidPlatform reports whether p is a known platform.
func IsValidPlatform(p Platform) bool {
	for _, v := range ValidPlatforms() {
		if p == v {
			return true
		}
	}
	return false
}
