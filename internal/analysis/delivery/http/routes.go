package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/analyze", h.Analyze)
		api.GET("/analyses/recent", h.RecentAnalyses)
	}
}
