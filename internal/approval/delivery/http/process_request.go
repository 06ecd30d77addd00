package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"
)

func (h *handler) processListApprovalsRequest(c *gin.Context) (listApprovalsReq, model.Scope, error) {
	var req listApprovalsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.processListApprovalsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processResolveApprovalRequest(c *gin.Context) (resolveApprovalReq, model.Scope, error) {
	var req resolveApprovalReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.processResolveApprovalRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.ApprovalID = c.Param("approval_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processBulkResolveRequest(c *gin.Context) (bulkResolveReq, model.Scope, error) {
	var req bulkResolveReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "approval.delivery.http.processBulkResolveRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
