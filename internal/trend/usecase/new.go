package usecase

import (
	"math/rand"
	"sync"
	"time"

	"insight-srv/internal/trend"
	"insight-srv/internal/trend/repository"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"
)

// Config tunes the trend boards.
type Config struct {
	KeywordBoardSize int
	VideosPerSearch  int
	PolicyChain      []trend.SearchPolicy
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		KeywordBoardSize: trend.KeywordBoardSize,
		VideosPerSearch:  trend.VideosPerSearch,
		PolicyChain:      trend.DefaultPolicyChain(),
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	youtube   youtube.IYouTube
	cacheRepo repository.CacheRepository
	l         log.Logger
	cfg       Config

	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
}

// New - Factory function
func New(
	yt youtube.IYouTube,
	cacheRepo repository.CacheRepository,
	l log.Logger,
	cfg Config,
) trend.UseCase {
	if len(cfg.PolicyChain) == 0 {
		cfg.PolicyChain = trend.DefaultPolicyChain()
	}
	if cfg.KeywordBoardSize <= 0 {
		cfg.KeywordBoardSize = trend.KeywordBoardSize
	}
	if cfg.VideosPerSearch <= 0 {
		cfg.VideosPerSearch = trend.VideosPerSearch
	}
	return &implUseCase{
		youtube:   yt,
		cacheRepo: cacheRepo,
		l:         l,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
}

func (uc *implUseCase) randIntn(n int) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.rng.Intn(n)
}

func (uc *implUseCase) shuffle(n int, swap func(i, j int)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.rng.Shuffle(n, swap)
}
