package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"insight-srv/internal/analysis"
	analysisHTTP "insight-srv/internal/analysis/delivery/http"
	analysisProducer "insight-srv/internal/analysis/delivery/kafka/producer"
	analysisPostgre "insight-srv/internal/analysis/repository/postgre"
	analysisRedis "insight-srv/internal/analysis/repository/redis"
	analysisUsecase "insight-srv/internal/analysis/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheTTL := time.Duration(srv.config.Analysis.CacheTTL) * time.Second
	cacheRepo := analysisRedis.New(srv.redisClient, srv.l, cacheTTL)
	historyRepo := analysisPostgre.New(srv.postgresDB, srv.l)

	var producer analysis.Producer
	if srv.producer != nil {
		producer = analysisProducer.New(srv.l, srv.producer)
	}

	ucCfg := analysisUsecase.DefaultConfig()
	if srv.config.Analysis.DefaultCommentLimit > 0 {
		ucCfg.DefaultCommentLimit = srv.config.Analysis.DefaultCommentLimit
	}
	if srv.config.Analysis.MaxReturnedComments > 0 {
		ucCfg.MaxReturnedComments = srv.config.Analysis.MaxReturnedComments
	}

	uc := analysisUsecase.New(srv.youtubeClient, srv.captionsClient, srv.llm, cacheRepo, historyRepo, producer, srv.l, ucCfg)

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered (llm=%v, events=%v)", srv.llm != nil, producer != nil)
	return nil
}
