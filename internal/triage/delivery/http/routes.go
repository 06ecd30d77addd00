package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/workspaces/:workspace_id/interactions", h.ListInteractions)
		api.POST("/workspaces/:workspace_id/interactions/refresh", h.RefreshInteractions)

		api.PATCH("/interactions/:interaction_id", h.UpdateInteraction)
		api.POST("/interactions/bulk", h.BulkAct)
		api.POST("/interactions/:interaction_id/suggest", h.Suggest)
		api.GET("/interactions/:interaction_id/suggestions", h.SuggestionHistory)

		api.GET("/views", h.ListViews)
		api.POST("/views", h.SaveView)
	}
}
