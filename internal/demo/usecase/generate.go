package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"engagement-srv/internal/model"
)

type seedTemplate struct {
	kind      model.InteractionKind
	content   string
	sentiment model.Sentiment
	status    model.InteractionStatus
	priority  model.Priority
	rating    int // 0 when not a review
}

var seedAuthors = []model.Author{
	{Name: "Alex Rivera", Followers: 1200},
	{Name: "Jordan Blake", Followers: 85},
	{Name: "Sam Okafor", Followers: 43000},
	{Name: "Priya Nair", Followers: 670},
	{Name: "Chris Delgado", Followers: 12},
}

var seedPlatforms = []model.Platform{
	model.PlatformGoogle,
	model.PlatformYouTube,
	model.PlatformInstagram,
	model.PlatformTikTok,
	model.PlatformFacebook,
}

var seedTemplates = []seedTemplate{
	{model.KindReview, "Great service, the team went above and beyond!", model.SentimentPositive, model.StatusUnread, model.PriorityNormal, 5},
	{model.KindReview, "Waited forty minutes and nobody helped us.", model.SentimentNegative, model.StatusNeedsResponse, model.PriorityHigh, 1},
	{model.KindComment, "Does anyone know if they're open on Sundays?", model.SentimentNeutral, model.StatusUnread, model.PriorityNormal, 0},
	{model.KindComment, "This tutorial saved me hours, thank you!", model.SentimentPositive, model.StatusResponded, model.PriorityNormal, 0},
	{model.KindMention, "Just tried this place, honestly mixed feelings about it.", model.SentimentMixed, model.StatusUnread, model.PriorityNormal, 0},
	{model.KindReview, "Solid product, shipping took a bit long though.", model.SentimentMixed, model.StatusUnread, model.PriorityNormal, 4},
	{model.KindComment, "Your latest update broke my workflow, please fix.", model.SentimentNegative, model.StatusNeedsResponse, model.PriorityHigh, 0},
	{model.KindMention, "Shoutout to the support team, super responsive.", model.SentimentPositive, model.StatusUnread, model.PriorityNormal, 0},
}

// generateInteraction builds the i-th demo interaction for a seed run.
// The external id embeds the job id, so re-running a seed upserts
// instead of duplicating.
func generateInteraction(workspaceID, jobID string, i int) model.Interaction {
	tmpl := seedTemplates[i%len(seedTemplates)]
	author := seedAuthors[i%len(seedAuthors)]
	platform := seedPlatforms[i%len(seedPlatforms)]

	it := model.Interaction{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		ExternalID:  fmt.Sprintf("demo-%s-%d", jobID, i),
		Platform:    platform,
		Kind:        tmpl.kind,
		Content:     tmpl.content,
		Author:      author,
		CreatedAt:   time.Now().UTC().Add(-time.Duration(i) * time.Hour),
		Sentiment:   tmpl.sentiment,
		Status:      tmpl.status,
		Priority:    tmpl.priority,
		Tags:        []string{"demo"},
		ReplyCount:  i % 7,
	}
	if tmpl.kind == model.KindReview {
		rating := tmpl.rating
		it.Rating = &rating
	}
	return it
}
