package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/triage"
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"
)

// @Summary List interactions
// @Description Return one filtered, sorted page of the workspace interaction feed
// @Tags Triage
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param platforms query []string false "Platform filter" collectionFormat(multi)
// @Param sentiment query string false "Sentiment filter (or all)"
// @Param status query string false "Status filter (or all)"
// @Param search query string false "Case-insensitive substring over content and author"
// @Param sort query string false "newest | oldest | priority | engagement"
// @Success 200 {object} listInteractionsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/workspaces/{workspace_id}/interactions [get]
func (h *handler) ListInteractions(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListInteractionsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.ListInteractions: processListInteractionsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.ListInteractions: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListInteractionsResp(o))
}

// @Summary Refresh the interaction feed
// @Description Reload the feed; a refresh superseded by a newer one is discarded
// @Tags Triage
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} listInteractionsResp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/workspaces/{workspace_id}/interactions/refresh [post]
func (h *handler) RefreshInteractions(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListInteractionsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.RefreshInteractions: processListInteractionsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input, err := req.toRefreshInput()
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Refresh(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.RefreshInteractions: usecase Refresh failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListInteractionsResp(o))
}

// @Summary Update an interaction
// @Description Apply a partial edit (status, sentiment, priority, assignee, tags)
// @Tags Triage
// @Accept json
// @Produce json
// @Param interaction_id path string true "Interaction ID"
// @Param body body updateInteractionReq true "Fields to change"
// @Success 200 {object} interactionResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/interactions/{interaction_id} [patch]
func (h *handler) UpdateInteraction(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateInteractionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.UpdateInteraction: processUpdateInteractionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.UpdateInteraction: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newInteractionResp(o.Interaction))
}

// @Summary Bulk act on selected interactions
// @Description Apply one action (tag, assign, status, mark_read, delete) to a set of ids
// @Tags Triage
// @Accept json
// @Produce json
// @Param body body bulkActReq true "Bulk action request"
// @Success 200 {object} bulkActResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/interactions/bulk [post]
func (h *handler) BulkAct(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBulkActRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.BulkAct: processBulkActRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.BulkAct(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.BulkAct: usecase BulkAct failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, bulkActResp{Affected: o.Affected, Skipped: o.Skipped})
}

// @Summary Generate a reply suggestion
// @Description Draft an AI reply for an interaction; drafts accumulate, never overwrite
// @Tags Triage
// @Accept json
// @Produce json
// @Param interaction_id path string true "Interaction ID"
// @Param body body suggestReq false "Suggestion options"
// @Success 200 {object} suggestResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/interactions/{interaction_id}/suggest [post]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSuggestRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.Suggest: processSuggestRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Suggest(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.Suggest: usecase Suggest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, suggestResp{
		InteractionID: o.InteractionID,
		Draft:         o.Draft,
		History:       o.History,
	})
}

// @Summary Get suggestion history
// @Description Return all drafts generated for an interaction, oldest first
// @Tags Triage
// @Produce json
// @Param interaction_id path string true "Interaction ID"
// @Success 200 {object} suggestionHistoryResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/interactions/{interaction_id}/suggestions [get]
func (h *handler) SuggestionHistory(c *gin.Context) {
	ctx := c.Request.Context()

	interactionID, sc, err := h.processSuggestionHistoryRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SuggestionHistory(ctx, sc, triage.SuggestionHistoryInput{InteractionID: interactionID})
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.SuggestionHistory: usecase SuggestionHistory failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, suggestionHistoryResp{
		InteractionID: o.InteractionID,
		Drafts:        o.Drafts,
	})
}

// @Summary Save a filter view
// @Description Persist a named filter preset for the calling user
// @Tags Triage
// @Accept json
// @Produce json
// @Param body body saveViewReq true "View to save"
// @Success 200 {object} viewResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/views [post]
func (h *handler) SaveView(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSaveViewRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.SaveView: processSaveViewRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SaveView(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.SaveView: usecase SaveView failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newViewResp(o))
}

// @Summary List saved views
// @Description Return the calling user's saved filter presets
// @Tags Triage
// @Produce json
// @Success 200 {array} viewResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/views [get]
func (h *handler) ListViews(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	views, err := h.uc.ListViews(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "triage.delivery.http.ListViews: usecase ListViews failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	out := make([]viewResp, 0, len(views))
	for _, v := range views {
		out = append(out, h.newViewResp(v))
	}
	response.OK(c, out)
}
