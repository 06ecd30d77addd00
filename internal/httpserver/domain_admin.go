package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	adminHTTP "engagement-srv/internal/admin/delivery/http"
	adminPostgre "engagement-srv/internal/admin/repository/postgre"
	adminUsecase "engagement-srv/internal/admin/usecase"
	"engagement-srv/internal/middleware"
)

func (srv *HTTPServer) setupAdminDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := adminPostgre.New(srv.postgresDB, srv.l)

	uc := adminUsecase.New(repo, srv.l)

	handler := adminHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Admin domain registered")
	return nil
}
