package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/automation/rules")
	api.Use(mw.Auth())
	{
		api.GET("", h.ListRules)
		api.POST("", h.CreateRule)
		api.PATCH("/:rule_id/enabled", h.SetEnabled)
	}
}
