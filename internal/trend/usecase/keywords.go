package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"insight-srv/internal/model"
	"insight-srv/internal/trend"
	"insight-srv/pkg/youtube"
)

const keywordsCacheKey = "trends:keywords"

var seedSearchTerms = []string{"AI", "인공지능", "ChatGPT", "머신러닝", "딥러닝", "자동화", "프로그래밍", "코딩"}

var techKeywords = []string{
	"AI", "인공지능", "ChatGPT", "GPT", "OpenAI", "머신러닝", "딥러닝",
	"자동화", "로봇", "알고리즘", "데이터", "빅데이터", "클라우드",
	"메타버스", "블록체인", "암호화폐", "비트코인", "이더리움",
	"프로그래밍", "코딩", "개발", "소프트웨어", "앱개발", "IT",
	"테크", "스타트업", "디지털", "온라인", "플랫폼", "서비스",
	"구글", "마이크로소프트", "애플", "테슬라", "메타", "아마존",
	"네이버", "카카오", "삼성", "LG", "SK", "현대",
	"자율주행", "IoT", "5G", "6G", "VR", "AR", "XR",
	"드론", "스마트", "디지털트윈", "양자컴퓨팅", "엣지컴퓨팅",
}

var (
	titleSplitRegex = regexp.MustCompile(`[\s,\-\[\]()]+`)
	allDigitsRegex  = regexp.MustCompile(`^\d+$`)
)

// isAIRelated reports whether a word belongs to the tech keyword set,
// matching in either containment direction.
func isAIRelated(word string) bool {
	lower := strings.ToLower(word)
	for _, kw := range techKeywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(lower, kwLower) || strings.Contains(kwLower, lower) {
			return true
		}
	}
	return false
}

// TrendingKeywords harvests AI-related keywords from recent popular
// video titles, falling back to the static board when the API yields
// nothing.
func (uc *implUseCase) TrendingKeywords(ctx context.Context) (trend.KeywordsOutput, error) {
	// Check cache
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.GetTrends(ctx, keywordsCacheKey); err == nil && data != nil {
			var cached trend.KeywordsOutput
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.CacheHit = true
				return cached, nil
			}
		}
	}

	keywords, harvested := uc.harvestKeywords(ctx)
	source := trend.SourceAPI
	if !harvested {
		keywords = uc.mockKeywordBoard()
		source = trend.SourceMock
	}

	output := trend.KeywordsOutput{
		Keywords: keywords,
		Source:   source,
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(output); err == nil {
			if err := uc.cacheRepo.SaveTrends(ctx, keywordsCacheKey, data); err != nil {
				uc.l.Warnf(ctx, "trend.usecase.TrendingKeywords: cache save failed: %v", err)
			}
		}
	}

	return output, nil
}

// harvestKeywords searches the seed terms over the recency window and
// collects AI-related words from result titles. The bool reports
// whether anything usable came back.
func (uc *implUseCase) harvestKeywords(ctx context.Context) ([]model.TrendKeyword, bool) {
	publishedAfter := uc.now().AddDate(0, 0, -trend.RecencyWindowDays)

	seen := make(map[string]struct{})
	var collected []string

	seeds := seedSearchTerms
	if len(seeds) > trend.SeedSearchLimit {
		seeds = seeds[:trend.SeedSearchLimit]
	}

	for _, seed := range seeds {
		results, err := uc.youtube.Search(ctx, youtube.SearchOptions{
			Query:          seed,
			Order:          youtube.OrderViewCount,
			MaxResults:     10,
			PublishedAfter: publishedAfter,
		})
		if err != nil {
			uc.l.Warnf(ctx, "trend.usecase.harvestKeywords: search %q failed: %v", seed, err)
			continue
		}

		for _, video := range results {
			words := harvestWordsFromTitle(video.Title)
			for _, word := range words {
				if _, ok := seen[word]; ok {
					continue
				}
				seen[word] = struct{}{}
				collected = append(collected, word)
			}
		}
	}

	if len(collected) == 0 {
		return nil, false
	}
	if len(collected) > uc.cfg.KeywordBoardSize {
		collected = collected[:uc.cfg.KeywordBoardSize]
	}

	keywords := make([]model.TrendKeyword, 0, len(collected))
	for i, word := range collected {
		keywords = append(keywords, model.TrendKeyword{
			Rank:         i + 1,
			Keyword:      word,
			Category:     "기술",
			Change:       uc.randomChange(),
			SearchVolume: uc.randomSearchVolume(),
		})
	}
	return keywords, true
}

// harvestWordsFromTitle keeps up to two AI-related words per title.
func harvestWordsFromTitle(title string) []string {
	var words []string
	for _, word := range titleSplitRegex.Split(title, -1) {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		if allDigitsRegex.MatchString(word) {
			continue
		}
		if !isAIRelated(word) {
			continue
		}
		words = append(words, word)
		if len(words) == 2 {
			break
		}
	}
	return words
}
