package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
	triageHTTP "engagement-srv/internal/triage/delivery/http"
	triagePostgre "engagement-srv/internal/triage/repository/postgre"
	triageRedis "engagement-srv/internal/triage/repository/redis"
	triageUsecase "engagement-srv/internal/triage/usecase"
)

func (srv *HTTPServer) setupTriageDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := triagePostgre.New(srv.postgresDB, srv.l)
	redisRepo := triageRedis.New(srv.redisClient, srv.l)

	uc := triageUsecase.New(repo, redisRepo, srv.geminiClient, srv.kafkaProducer, srv.l, triageUsecase.Config{
		AuditTopic: srv.config.Kafka.AuditTopic,
	})

	handler := triageHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Triage domain registered")
	return nil
}
