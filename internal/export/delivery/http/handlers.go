package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"
)

// @Summary Create an engagement export
// @Description Start a CSV export of the filtered interaction list
// @Tags Export
// @Accept json
// @Produce json
// @Param body body createExportReq false "Filter to export"
// @Success 200 {object} exportResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/exports [post]
func (h *handler) CreateExport(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var req createExportReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "export.delivery.http.CreateExport: ShouldBindJSON failed: %v", err)
			response.Error(c, err, h.discord)
			return
		}
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.CreateExport: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newExportResp(o.Export))
}

// @Summary Get export status
// @Description Return one export row; poll until completed
// @Tags Export
// @Produce json
// @Param export_id path string true "Export ID"
// @Success 200 {object} exportResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/exports/{export_id} [get]
func (h *handler) GetExport(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Get(ctx, sc, c.Param("export_id"))
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.GetExport: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newExportResp(o.Export))
}

// @Summary Download an export
// @Description Return a time-limited download URL for a completed export
// @Tags Export
// @Produce json
// @Param export_id path string true "Export ID"
// @Success 200 {object} downloadResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/exports/{export_id}/download [get]
func (h *handler) DownloadExport(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Download(ctx, sc, c.Param("export_id"))
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.DownloadExport: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newDownloadResp(o))
}
