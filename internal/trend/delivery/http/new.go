package http

import (
	"insight-srv/internal/middleware"
	"insight-srv/internal/trend"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the trend HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      trend.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc trend.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
