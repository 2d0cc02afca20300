package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// TrendingKeywords - Current AI-related trending keyword board
// @Summary Trending keywords
// @Description Harvests AI-related keywords from recent popular video titles
// @Tags Trends
// @Produce json
// @Success 200 {object} keywordsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/trends/keywords [get]
func (h *handler) TrendingKeywords(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TrendingKeywords(ctx)
	if err != nil {
		h.l.Errorf(ctx, "trend.delivery.http.TrendingKeywords: usecase failed: %v", err)
		response.Error(c, errKeywordsFailed, h.discord)
		return
	}

	response.OK(c, h.newKeywordsResp(output))
}

// TrendingVideos - Popular videos for one keyword
// @Summary Trending videos for a keyword
// @Tags Trends
// @Accept json
// @Produce json
// @Param body body videosReq true "Keyword"
// @Success 200 {object} videosResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/trends/videos [post]
func (h *handler) TrendingVideos(c *gin.Context) {
	ctx := c.Request.Context()

	var req videosReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "trend.delivery.http.TrendingVideos: bad request: %v", err)
		response.Error(c, errKeywordRequired, h.discord)
		return
	}

	output, err := h.uc.TrendingVideos(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "trend.delivery.http.TrendingVideos: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newVideosResp(output))
}
