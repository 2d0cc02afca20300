package trend

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	TrendingKeywords(ctx context.Context) (KeywordsOutput, error)
	TrendingVideos(ctx context.Context, input VideosInput) (VideosOutput, error)
}
