package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	adminAPI := r.Group("/api/v1/admin")
	adminAPI.Use(mw.Auth())
	{
		adminAPI.GET("/users", h.ListUsers)
		adminAPI.POST("/users", h.CreateUser)
	}

	usersAPI := r.Group("/api/v1/users")
	usersAPI.Use(mw.Auth())
	{
		usersAPI.GET("/demo-requests", h.ListDemoRequests)
		usersAPI.PUT("/:user_id/admin-notes", h.UpdateAdminNotes)
		usersAPI.PUT("/:user_id/demo-scheduled", h.ScheduleDemo)
		usersAPI.PUT("/:user_id/demo-completed", h.CompleteDemo)
	}
}
