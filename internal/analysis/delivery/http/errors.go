package http

import (
	"errors"

	"insight-srv/internal/analysis"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errURLRequired = pkgErrors.NewHTTPError(
		400, "URL이 필요합니다.",
	)
	errInvalidURL = pkgErrors.NewHTTPError(
		400, "올바른 YouTube URL이 아닙니다.",
	)
	errInvalidCommentLimit = pkgErrors.NewHTTPError(
		400, "댓글 개수 제한이 올바르지 않습니다.",
	)
	errAnalysisFailed = pkgErrors.NewHTTPError(
		500, "분석 중 오류가 발생했습니다.",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrURLRequired):
		return errURLRequired
	case errors.Is(err, analysis.ErrInvalidURL):
		return errInvalidURL
	case errors.Is(err, analysis.ErrInvalidCommentLimit):
		return errInvalidCommentLimit
	case errors.Is(err, analysis.ErrAnalysisFailed):
		return errAnalysisFailed
	default:
		panic(err)
	}
}
