package http

import (
	"strconv"

	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Analyze - Run the full comment analysis for one video
// @Summary Analyze a YouTube video
// @Description Fetches metadata, captions and comments for a video and runs the sentiment/keyword/topic pipeline
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analyze request"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.Analyze(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newAnalyzeResp(output)
	response.OK(c, resp)
}

// RecentAnalyses - List the newest persisted analysis runs
// @Summary List recent analyses
// @Tags Analysis
// @Produce json
// @Param limit query int false "Max records (default 10)"
// @Success 200 {array} analysisRecordResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyses/recent [get]
func (h *handler) RecentAnalyses(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	records, err := h.uc.RecentAnalyses(ctx, limit)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.RecentAnalyses: usecase failed: %v", err)
		response.Error(c, errAnalysisFailed, h.discord)
		return
	}

	response.OK(c, h.newRecentResp(records))
}
