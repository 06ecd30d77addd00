package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/polling"
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"
)

type setConfigReq struct {
	IntervalSeconds int  `json:"interval_seconds" binding:"required"`
	Enabled         bool `json:"enabled"`
}

// @Summary Get polling configuration
// @Description Return the workspace platform sync configuration
// @Tags Polling
// @Produce json
// @Success 200 {object} polling.Config
// @Failure 500 {object} response.Resp
// @Router /api/v1/polling/config [get]
func (h *handler) GetConfig(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetConfig(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "polling.delivery.http.GetConfig: usecase GetConfig failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o.Config)
}

// @Summary Update polling configuration
// @Description Set the sync interval (30..3600 seconds) and enabled flag
// @Tags Polling
// @Accept json
// @Produce json
// @Param body body setConfigReq true "New configuration"
// @Success 200 {object} polling.Config
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/polling/config [put]
func (h *handler) SetConfig(c *gin.Context) {
	ctx := c.Request.Context()

	var req setConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "polling.delivery.http.SetConfig: ShouldBindJSON failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.SetConfig(ctx, sc, polling.SetConfigInput{
		IntervalSeconds: req.IntervalSeconds,
		Enabled:         req.Enabled,
	})
	if err != nil {
		h.l.Errorf(ctx, "polling.delivery.http.SetConfig: usecase SetConfig failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o.Config)
}

// @Summary Get polling stats
// @Description Return feed counts for the workspace; cached for a short period
// @Tags Polling
// @Produce json
// @Success 200 {object} polling.Stats
// @Failure 500 {object} response.Resp
// @Router /api/v1/polling/stats [get]
func (h *handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetStats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "polling.delivery.http.GetStats: usecase GetStats failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o.Stats)
}
