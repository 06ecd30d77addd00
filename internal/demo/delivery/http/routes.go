package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/demo")
	api.Use(mw.Auth())
	{
		api.POST("/seed", h.Seed)
		api.GET("/status", h.Status)
	}
}
