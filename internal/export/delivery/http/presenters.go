package http

import (
	"time"

	"engagement-srv/internal/export"
	"engagement-srv/internal/model"
)

type createExportReq struct {
	Platforms []string `json:"platforms,omitempty"`
	Sentiment string   `json:"sentiment,omitempty"`
	Status    string   `json:"status,omitempty"`
	Search    string   `json:"search,omitempty"`
	DateFrom  string   `json:"date_from,omitempty"`
	DateTo    string   `json:"date_to,omitempty"`
	Sort      string   `json:"sort,omitempty"`
}

func (r createExportReq) toInput() (export.CreateInput, error) {
	filter := model.FilterState{
		Sentiment: model.Sentiment(r.Sentiment),
		Status:    model.InteractionStatus(r.Status),
		Search:    r.Search,
	}
	for _, p := range r.Platforms {
		filter.Platforms = append(filter.Platforms, model.Platform(p))
	}
	if r.DateFrom != "" {
		from, err := time.Parse(time.RFC3339, r.DateFrom)
		if err != nil {
			return export.CreateInput{}, errInvalidDateRange
		}
		filter.DateFrom = &from
	}
	if r.DateTo != "" {
		to, err := time.Parse(time.RFC3339, r.DateTo)
		if err != nil {
			return export.CreateInput{}, errInvalidDateRange
		}
		filter.DateTo = &to
	}
	return export.CreateInput{
		Filter: filter,
		Sort:   model.SortOrder(r.Sort),
	}, nil
}

type exportResp struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	RowCount      int     `json:"row_count"`
	FileSizeBytes int64   `json:"file_size_bytes"`
	ErrorMessage  string  `json:"error_message,omitempty"`
	CreatedAt     string  `json:"created_at"`
	CompletedAt   *string `json:"completed_at,omitempty"`
}

type downloadResp struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

func newExportResp(exp model.Export) exportResp {
	resp := exportResp{
		ID:            exp.ID,
		Status:        string(exp.Status),
		RowCount:      exp.RowCount,
		FileSizeBytes: exp.FileSizeBytes,
		ErrorMessage:  exp.ErrorMessage,
		CreatedAt:     exp.CreatedAt.Format(time.RFC3339),
	}
	if exp.CompletedAt != nil {
		completed := exp.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

func newDownloadResp(o export.DownloadOutput) downloadResp {
	return downloadResp{
		URL:       o.URL,
		ExpiresAt: o.ExpiresAt.Format(time.RFC3339),
	}
}
