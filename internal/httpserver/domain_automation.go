package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	automationHTTP "engagement-srv/internal/automation/delivery/http"
	automationPostgre "engagement-srv/internal/automation/repository/postgre"
	automationUsecase "engagement-srv/internal/automation/usecase"
	"engagement-srv/internal/middleware"
)

func (srv *HTTPServer) setupAutomationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := automationPostgre.New(srv.postgresDB, srv.l)

	uc := automationUsecase.New(repo, srv.l)

	handler := automationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Automation domain registered")
	return nil
}
