package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"
)

func (h *handler) processListInteractionsRequest(c *gin.Context) (listInteractionsReq, model.Scope, error) {
	var req listInteractionsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.processListInteractionsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	if c.Param("workspace_id") != sc.WorkspaceID {
		return req, model.Scope{}, errWorkspaceMismatch
	}
	return req, sc, nil
}

func (h *handler) processUpdateInteractionRequest(c *gin.Context) (updateInteractionReq, model.Scope, error) {
	var req updateInteractionReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.processUpdateInteractionRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.InteractionID = c.Param("interaction_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processBulkActRequest(c *gin.Context) (bulkActReq, model.Scope, error) {
	var req bulkActReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.processBulkActRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processSuggestRequest(c *gin.Context) (suggestReq, model.Scope, error) {
	var req suggestReq

	ctx := c.Request.Context()
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "triage.delivery.http.processSuggestRequest: ShouldBindJSON failed: %v", err)
			return req, model.Scope{}, err
		}
	}
	req.InteractionID = c.Param("interaction_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processSuggestionHistoryRequest(c *gin.Context) (string, model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return c.Param("interaction_id"), sc, nil
}

func (h *handler) processSaveViewRequest(c *gin.Context) (saveViewReq, model.Scope, error) {
	var req saveViewReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.processSaveViewRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
