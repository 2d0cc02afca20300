package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/trends")
	{
		api.GET("/keywords", h.TrendingKeywords)
		api.POST("/videos", h.TrendingVideos)
	}
}
