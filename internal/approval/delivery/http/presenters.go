package http

import (
	"time"

	"engagement-srv/internal/approval"
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

type listApprovalsReq struct {
	paginator.PaginateQuery
	Status string `form:"status"`
	Urgent *bool  `form:"urgent"`
}

func (r listApprovalsReq) toInput() approval.ListInput {
	return approval.ListInput{
		Status:   model.ApprovalStatus(r.Status),
		Urgent:   r.Urgent,
		PagQuery: r.PaginateQuery,
	}
}

// resolveApprovalReq covers both resolution and edit: "approve" and
// "reject" flip the status, "edit" rewrites the drafted response.
type resolveApprovalReq struct {
	ApprovalID   string `json:"-"`
	Action       string `json:"action" binding:"required"`
	ResponseText string `json:"response_text,omitempty"`
}

type bulkResolveReq struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action" binding:"required"`
}

func (r bulkResolveReq) toInput() approval.BulkResolveInput {
	return approval.BulkResolveInput{
		IDs:        r.IDs,
		Resolution: r.Action,
	}
}

type approvalItemResp struct {
	ID         string                `json:"id"`
	ChannelID  string                `json:"channel_id"`
	ResponseID string                `json:"response_id"`
	Payload    model.ApprovalPayload `json:"payload"`
	Priority   int                   `json:"priority"`
	Status     string                `json:"status"`
	Urgent     bool                  `json:"urgent"`
	CreatedAt  string                `json:"created_at"`
	ResolvedAt *string               `json:"resolved_at,omitempty"`
}

type listApprovalsResp struct {
	Items      []approvalItemResp  `json:"items"`
	Pagination paginator.Paginator `json:"pagination"`
}

type bulkResolveResp struct {
	Affected int `json:"affected"`
	Skipped  int `json:"skipped"`
}

func newApprovalItemResp(item model.ApprovalItem) approvalItemResp {
	resp := approvalItemResp{
		ID:         item.ID,
		ChannelID:  item.ChannelID,
		ResponseID: item.ResponseID,
		Payload:    item.Payload,
		Priority:   item.Priority,
		Status:     string(item.Status),
		Urgent:     item.Urgent,
		CreatedAt:  item.CreatedAt.Format(time.RFC3339),
	}
	if item.ResolvedAt != nil {
		resolved := item.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &resolved
	}
	return resp
}

func (h *handler) newListApprovalsResp(o approval.ListOutput) listApprovalsResp {
	items := make([]approvalItemResp, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, newApprovalItemResp(item))
	}
	return listApprovalsResp{
		Items:      items,
		Pagination: o.Pagination,
	}
}
