package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/exports")
	api.Use(mw.Auth())
	{
		api.POST("", h.CreateExport)
		api.GET("/:export_id", h.GetExport)
		api.GET("/:export_id/download", h.DownloadExport)
	}
}
