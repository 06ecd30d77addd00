package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
	pollingHTTP "engagement-srv/internal/polling/delivery/http"
	pollingPostgre "engagement-srv/internal/polling/repository/postgre"
	pollingRedis "engagement-srv/internal/polling/repository/redis"
	pollingUsecase "engagement-srv/internal/polling/usecase"
)

func (srv *HTTPServer) setupPollingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := pollingPostgre.New(srv.postgresDB, srv.l)
	redisRepo := pollingRedis.New(srv.redisClient, srv.l)

	uc := pollingUsecase.New(repo, redisRepo, srv.l)

	handler := pollingHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Polling domain registered")
	return nil
}
