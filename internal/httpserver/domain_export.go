package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	exportHTTP "engagement-srv/internal/export/delivery/http"
	exportPostgre "engagement-srv/internal/export/repository/postgre"
	exportUsecase "engagement-srv/internal/export/usecase"
	"engagement-srv/internal/middleware"
	triagePostgre "engagement-srv/internal/triage/repository/postgre"
)

func (srv *HTTPServer) setupExportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := exportPostgre.New(srv.postgresDB, srv.l)
	interactions := triagePostgre.New(srv.postgresDB, srv.l)

	uc := exportUsecase.New(repo, interactions, srv.minioClient, srv.l, exportUsecase.Config{
		Bucket: srv.config.MinIO.Bucket,
	})

	handler := exportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Export domain registered")
	return nil
}
