package postgre

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"engagement-srv/internal/model"
)

type interactionRow struct {
	ID              string         `db:"id"`
	WorkspaceID     string         `db:"workspace_id"`
	ExternalID      string         `db:"external_id"`
	Platform        string         `db:"platform"`
	Kind            string         `db:"kind"`
	Content         string         `db:"content"`
	AuthorName      string         `db:"author_name"`
	AuthorAvatarURL sql.NullString `db:"author_avatar_url"`
	AuthorFollowers int            `db:"author_followers"`
	CreatedAt       time.Time      `db:"created_at"`
	Sentiment       string         `db:"sentiment"`
	Status          string         `db:"status"`
	Priority        string         `db:"priority"`
	Tags            pq.StringArray `db:"tags"`
	AssignedTo      sql.NullString `db:"assigned_to"`
	Rating          sql.NullInt32  `db:"rating"`
	ReplyCount      int            `db:"reply_count"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r interactionRow) toModel() model.Interaction {
	it := model.Interaction{
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		ExternalID:  r.ExternalID,
		Platform:    model.Platform(r.Platform),
		Kind:        model.InteractionKind(r.Kind),
		Content:     r.Content,
		Author: model.Author{
			Name:      r.AuthorName,
			Followers: r.AuthorFollowers,
		},
		CreatedAt:  r.CreatedAt,
		Sentiment:  model.Sentiment(r.Sentiment),
		Status:     model.InteractionStatus(r.Status),
		Priority:   model.Priority(r.Priority),
		Tags:       []string(r.Tags),
		ReplyCount: r.ReplyCount,
	}
	if r.AuthorAvatarURL.Valid {
		it.Author.AvatarURL = r.AuthorAvatarURL.String
	}
	if r.AssignedTo.Valid {
		it.AssignedTo = r.AssignedTo.String
	}
	if r.Rating.Valid {
		rating := int(r.Rating.Int32)
		it.Rating = &rating
	}
	return it
}

func newInteractionRow(it model.Interaction) interactionRow {
	row := interactionRow{
		ID:              it.ID,
		WorkspaceID:     it.WorkspaceID,
		ExternalID:      it.ExternalID,
		Platform:        string(it.Platform),
		Kind:            string(it.Kind),
		Content:         it.Content,
		AuthorName:      it.Author.Name,
		AuthorFollowers: it.Author.Followers,
		CreatedAt:       it.CreatedAt,
		Sentiment:       string(it.Sentiment),
		Status:          string(it.Status),
		Priority:        string(it.Priority),
		Tags:            pq.StringArray(it.Tags),
		ReplyCount:      it.ReplyCount,
		UpdatedAt:       time.Now(),
	}
	if it.Author.AvatarURL != "" {
		row.AuthorAvatarURL = sql.NullString{String: it.Author.AvatarURL, Valid: true}
	}
	if it.AssignedTo != "" {
		row.AssignedTo = sql.NullString{String: it.AssignedTo, Valid: true}
	}
	if it.Rating != nil {
		row.Rating = sql.NullInt32{Int32: int32(*it.Rating), Valid: true}
	}
	return row
}
