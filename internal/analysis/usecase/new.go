package usecase

import (
	"insight-srv/internal/analysis"
	"insight-srv/internal/analysis/repository"
	"insight-srv/pkg/captions"
	"insight-srv/pkg/log"
	"insight-srv/pkg/openai"
	"insight-srv/pkg/youtube"
)

// Config tunes the pipeline.
type Config struct {
	DefaultCommentLimit int
	MaxReturnedComments int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DefaultCommentLimit: analysis.DefaultCommentLimit,
		MaxReturnedComments: analysis.MaxReturnedComments,
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	youtube     youtube.IYouTube
	captions    captions.ICaptions
	llm         openai.IOpenAI // nil selects the heuristic tier
	cacheRepo   repository.CacheRepository
	historyRepo repository.HistoryRepository
	producer    analysis.Producer // nil disables event publishing
	l           log.Logger
	cfg         Config
}

// New - Factory function
func New(
	yt youtube.IYouTube,
	cc captions.ICaptions,
	llm openai.IOpenAI,
	cacheRepo repository.CacheRepository,
	historyRepo repository.HistoryRepository,
	producer analysis.Producer,
	l log.Logger,
	cfg Config,
) analysis.UseCase {
	return &implUseCase{
		youtube:     yt,
		captions:    cc,
		llm:         llm,
		cacheRepo:   cacheRepo,
		historyRepo: historyRepo,
		producer:    producer,
		l:           l,
		cfg:         cfg,
	}
}
