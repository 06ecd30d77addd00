package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage"
	"engagement-srv/pkg/paginator"
)

type listInteractionsReq struct {
	paginator.PaginateQuery
	Platforms []string `form:"platforms"`
	Sentiment string   `form:"sentiment"`
	Status    string   `form:"status"`
	Search    string   `form:"search"`
	DateFrom  string   `form:"date_from"`
	DateTo    string   `form:"date_to"`
	Sort      string   `form:"sort"`
}

func (r listInteractionsReq) toFilter() (model.FilterState, error) {
	fs := model.FilterState{
		Sentiment: model.Sentiment(r.Sentiment),
		Status:    model.InteractionStatus(r.Status),
		Search:    r.Search,
	}
	for _, p := range r.Platforms {
		fs.Platforms = append(fs.Platforms, model.Platform(p))
	}
	if r.DateFrom != "" {
		from, err := time.Parse(time.RFC3339, r.DateFrom)
		if err != nil {
			return fs, errInvalidDateRange
		}
		fs.DateFrom = &from
	}
	if r.DateTo != "" {
		to, err := time.Parse(time.RFC3339, r.DateTo)
		if err != nil {
			return fs, errInvalidDateRange
		}
		fs.DateTo = &to
	}
	return fs, nil
}

func (r listInteractionsReq) toInput() (triage.ListInput, error) {
	fs, err := r.toFilter()
	if err != nil {
		return triage.ListInput{}, err
	}
	return triage.ListInput{
		Filter:   fs,
		Sort:     model.SortOrder(r.Sort),
		PagQuery: r.PaginateQuery,
	}, nil
}

func (r listInteractionsReq) toRefreshInput() (triage.RefreshInput, error) {
	fs, err := r.toFilter()
	if err != nil {
		return triage.RefreshInput{}, err
	}
	return triage.RefreshInput{
		Filter:   fs,
		Sort:     model.SortOrder(r.Sort),
		PagQuery: r.PaginateQuery,
	}, nil
}

type updateInteractionReq struct {
	InteractionID string   `json:"-"`
	Status        *string  `json:"status,omitempty"`
	Sentiment     *string  `json:"sentiment,omitempty"`
	Priority      *string  `json:"priority,omitempty"`
	AssignedTo    *string  `json:"assigned_to,omitempty"`
	AddTags       []string `json:"add_tags,omitempty"`
	RemoveTags    []string `json:"remove_tags,omitempty"`
}

func (r updateInteractionReq) toInput() triage.UpdateInput {
	input := triage.UpdateInput{
		InteractionID: r.InteractionID,
		AssignedTo:    r.AssignedTo,
		AddTags:       r.AddTags,
		RemoveTags:    r.RemoveTags,
	}
	if r.Status != nil {
		status := model.InteractionStatus(*r.Status)
		input.Status = &status
	}
	if r.Sentiment != nil {
		sentiment := model.Sentiment(*r.Sentiment)
		input.Sentiment = &sentiment
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		input.Priority = &priority
	}
	return input
}

type bulkActReq struct {
	Action   string   `json:"action" binding:"required"`
	IDs      []string `json:"ids"`
	Tag      string   `json:"tag,omitempty"`
	AssignTo string   `json:"assign_to,omitempty"`
	Status   string   `json:"status,omitempty"`
}

func (r bulkActReq) toInput() triage.BulkInput {
	return triage.BulkInput{
		Action:   r.Action,
		IDs:      r.IDs,
		Tag:      r.Tag,
		AssignTo: r.AssignTo,
		Status:   model.InteractionStatus(r.Status),
	}
}

type suggestReq struct {
	InteractionID string `json:"-"`
	Tone          string `json:"tone,omitempty"`
}

func (r suggestReq) toInput() triage.SuggestInput {
	return triage.SuggestInput{
		InteractionID: r.InteractionID,
		Tone:          r.Tone,
	}
}

type saveViewReq struct {
	Name   string            `json:"name" binding:"required"`
	Filter model.FilterState `json:"filter"`
	Sort   string            `json:"sort,omitempty"`
}

func (r saveViewReq) toInput() triage.SaveViewInput {
	return triage.SaveViewInput{
		Name:   r.Name,
		Filter: r.Filter,
		Sort:   model.SortOrder(r.Sort),
	}
}

type authorResp struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Followers int    `json:"followers"`
}

type interactionResp struct {
	ID         string     `json:"id"`
	Platform   string     `json:"platform"`
	Kind       string     `json:"kind"`
	Content    string     `json:"content"`
	Author     authorResp `json:"author"`
	CreatedAt  string     `json:"created_at"`
	Sentiment  string     `json:"sentiment"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	Tags       []string   `json:"tags"`
	AssignedTo string     `json:"assigned_to,omitempty"`
	Rating     *int       `json:"rating,omitempty"`
	ReplyCount int        `json:"reply_count"`
}

type listInteractionsResp struct {
	Interactions []interactionResp   `json:"interactions"`
	Pagination   paginator.Paginator `json:"pagination"`
}

type bulkActResp struct {
	Affected int64 `json:"affected"`
	Skipped  int   `json:"skipped"`
}

type suggestResp struct {
	InteractionID string   `json:"interaction_id"`
	Draft         string   `json:"draft"`
	History       []string `json:"history"`
}

type suggestionHistoryResp struct {
	InteractionID string   `json:"interaction_id"`
	Drafts        []string `json:"drafts"`
}

type viewResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Filter    model.FilterState `json:"filter"`
	Sort      string            `json:"sort"`
	CreatedAt string            `json:"created_at"`
}

func newInteractionResp(it model.Interaction) interactionResp {
	resp := interactionResp{
		ID:       it.ID,
		Platform: string(it.Platform),
		Kind:     string(it.Kind),
		Content:  it.Content,
		Author: authorResp{
			Name:      it.Author.Name,
			AvatarURL: it.Author.AvatarURL,
			Followers: it.Author.Followers,
		},
		CreatedAt:  it.CreatedAt.Format(time.RFC3339),
		Sentiment:  string(it.Sentiment),
		Status:     string(it.Status),
		Priority:   string(it.Priority),
		Tags:       it.Tags,
		AssignedTo: it.AssignedTo,
		Rating:     it.Rating,
		ReplyCount: it.ReplyCount,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

func (h *handler) newListInteractionsResp(o triage.ListOutput) listInteractionsResp {
	items := make([]interactionResp, 0, len(o.Interactions))
	for _, it := range o.Interactions {
		items = append(items, newInteractionResp(it))
	}
	return listInteractionsResp{
		Interactions: items,
		Pagination:   o.Pagination,
	}
}

func (h *handler) newViewResp(o triage.ViewOutput) viewResp {
	return viewResp{
		ID:        o.View.ID,
		Name:      o.View.Name,
		Filter:    o.View.Filter,
		Sort:      string(o.View.Sort),
		CreatedAt: o.View.CreatedAt.Format(time.RFC3339),
	}
}
