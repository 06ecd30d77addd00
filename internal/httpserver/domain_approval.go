package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	approvalHTTP "engagement-srv/internal/approval/delivery/http"
	approvalPostgre "engagement-srv/internal/approval/repository/postgre"
	approvalUsecase "engagement-srv/internal/approval/usecase"
	"engagement-srv/internal/middleware"
)

func (srv *HTTPServer) setupApprovalDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := approvalPostgre.New(srv.postgresDB, srv.l)

	uc := approvalUsecase.New(repo, srv.l)

	handler := approvalHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Approval domain registered")
	return nil
}
