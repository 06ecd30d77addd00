package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
	onboardingHTTP "engagement-srv/internal/onboarding/delivery/http"
	onboardingRedis "engagement-srv/internal/onboarding/repository/redis"
	onboardingUsecase "engagement-srv/internal/onboarding/usecase"
)

func (srv *HTTPServer) setupOnboardingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := onboardingRedis.New(srv.redisClient, srv.l)

	uc := onboardingUsecase.New(repo, srv.l)

	handler := onboardingHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Onboarding domain registered")
	return nil
}
