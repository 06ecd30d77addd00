package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/approval"
	"engagement-srv/pkg/response"
)

const actionEdit = "edit"

// @Summary List approval queue items
// @Description Return one page of automation actions awaiting review, urgent first
// @Tags Approval
// @Produce json
// @Param status query string false "Status filter (pending, approved, rejected)"
// @Param urgent query bool false "Urgent-only filter"
// @Success 200 {object} listApprovalsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/automation/approvals [get]
func (h *handler) ListApprovals(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListApprovalsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.ListApprovals: processListApprovalsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.ListApprovals: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListApprovalsResp(o))
}

// @Summary Resolve or edit an approval item
// @Description approve/reject a pending item (terminal), or edit its drafted response
// @Tags Approval
// @Accept json
// @Produce json
// @Param approval_id path string true "Approval item ID"
// @Param body body resolveApprovalReq true "Action to apply"
// @Success 200 {object} approvalItemResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/automation/approvals/{approval_id} [put]
func (h *handler) ResolveApproval(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processResolveApprovalRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.ResolveApproval: processResolveApprovalRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	var o approval.ItemOutput
	if req.Action == actionEdit {
		o, err = h.uc.Edit(ctx, sc, approval.EditInput{
			ApprovalID:   req.ApprovalID,
			ResponseText: req.ResponseText,
		})
	} else {
		o, err = h.uc.Resolve(ctx, sc, approval.ResolveInput{
			ApprovalID: req.ApprovalID,
			Resolution: req.Action,
		})
	}
	if err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.ResolveApproval: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newApprovalItemResp(o.Item))
}

// @Summary Bulk resolve approval items
// @Description Apply one resolution to many items; already resolved items are skipped
// @Tags Approval
// @Accept json
// @Produce json
// @Param body body bulkResolveReq true "Bulk resolution request"
// @Success 200 {object} bulkResolveResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/automation/approvals/bulk [put]
func (h *handler) BulkResolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBulkResolveRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.BulkResolve: processBulkResolveRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.BulkResolve(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.BulkResolve: usecase BulkResolve failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, bulkResolveResp{Affected: o.Affected, Skipped: o.Skipped})
}
