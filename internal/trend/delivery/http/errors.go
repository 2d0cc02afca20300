package http

import (
	"errors"

	"insight-srv/internal/trend"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errKeywordRequired = pkgErrors.NewHTTPError(
		400, "검색 키워드가 필요합니다.",
	)
	errKeywordsFailed = pkgErrors.NewHTTPError(
		500, "AI 트렌드 키워드를 가져오는데 실패했습니다",
	)
	errVideosFailed = pkgErrors.NewHTTPError(
		500, "영상 검색 중 오류가 발생했습니다.",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, trend.ErrKeywordRequired):
		return errKeywordRequired
	case errors.Is(err, trend.ErrTrendsFailed):
		return errVideosFailed
	default:
		panic(err)
	}
}
