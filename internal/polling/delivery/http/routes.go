package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/polling")
	api.Use(mw.Auth())
	{
		api.GET("/config", h.GetConfig)
		api.PUT("/config", h.SetConfig)
		api.GET("/stats", h.GetStats)
	}
}
