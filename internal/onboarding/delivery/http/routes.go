package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/onboarding")
	api.Use(mw.Auth())
	{
		api.GET("/status", h.GetStatus)
		api.POST("/steps/:step/complete", h.CompleteStep)
	}
}
