package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	demoHTTP "engagement-srv/internal/demo/delivery/http"
	demoRedis "engagement-srv/internal/demo/repository/redis"
	demoUsecase "engagement-srv/internal/demo/usecase"
	"engagement-srv/internal/middleware"
	triagePostgre "engagement-srv/internal/triage/repository/postgre"
)

func (srv *HTTPServer) setupDemoDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	redisRepo := demoRedis.New(srv.redisClient, srv.l)
	interactions := triagePostgre.New(srv.postgresDB, srv.l)

	uc := demoUsecase.New(redisRepo, interactions, srv.l)

	handler := demoHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Demo domain registered")
	return nil
}
