package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"insight-srv/internal/middleware"
	trendHTTP "insight-srv/internal/trend/delivery/http"
	trendRedis "insight-srv/internal/trend/repository/redis"
	trendUsecase "insight-srv/internal/trend/usecase"
)

func (srv *HTTPServer) setupTrendDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheTTL := time.Duration(srv.config.Analysis.TrendCacheTTL) * time.Second
	cacheRepo := trendRedis.New(srv.redisClient, srv.l, cacheTTL)

	uc := trendUsecase.New(srv.youtubeClient, cacheRepo, srv.l, trendUsecase.DefaultConfig())

	handler := trendHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Trend domain registered")
	return nil
}
