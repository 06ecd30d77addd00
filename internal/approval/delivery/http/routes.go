package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/automation/approvals")
	api.Use(mw.Auth())
	{
		api.GET("", h.ListApprovals)
		api.PUT("/bulk", h.BulkResolve)
		api.PUT("/:approval_id", h.ResolveApproval)
	}
}
