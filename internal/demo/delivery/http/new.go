package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/demo"
	"engagement-srv/internal/middleware"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      demo.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc demo.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
