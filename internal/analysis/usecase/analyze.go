package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/pkg/youtube"
)

// Analyze - Main analysis method
// Flow: validate → check cache → collect data in parallel → summary +
// keywords → clean/translate comments → batch sentiment → per-comment
// features → aggregate → persist → return
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	// Step 0: Validate input
	videoID, err := uc.validateInput(input)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	// Step 1: Check cache
	cacheKey := fmt.Sprintf("analysis:%s:%d", videoID, input.CommentLimit)
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.GetAnalysis(ctx, cacheKey); err == nil && data != nil {
			var cached analysis.AnalyzeOutput
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.CacheHit = true
				uc.l.Debugf(ctx, "analysis.usecase.Analyze: cache hit for %s", cacheKey)
				return cached, nil
			}
		}
	}

	uc.l.Infof(ctx, "analysis.usecase.Analyze: videoID=%s commentLimit=%d", videoID, input.CommentLimit)

	// Step 2: Collect video info, transcript and comments in parallel.
	// Each collector degrades on its own, so the group never errors.
	var (
		info       model.VideoInfo
		fromAPI    bool
		transcript string
		hasTrack   bool
		raw        []rawComment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, fromAPI = uc.fetchVideoInfo(gctx, videoID)
		return nil
	})
	g.Go(func() error {
		transcript, hasTrack = uc.fetchTranscript(gctx, videoID)
		return nil
	})
	g.Go(func() error {
		raw = uc.fetchComments(gctx, videoID, input.CommentLimit)
		return nil
	})
	_ = g.Wait()

	rawTexts := make([]string, 0, len(raw))
	for _, c := range raw {
		rawTexts = append(rawTexts, c.Text)
	}

	// Step 3: Summary and top keywords in parallel
	var (
		summary     string
		topKeywords []string
	)
	g2, g2ctx := errgroup.WithContext(ctx)
	g2.Go(func() error {
		summary = uc.generateSummary(g2ctx, transcript, info, fromAPI, rawTexts)
		return nil
	})
	g2.Go(func() error {
		topKeywords = uc.extractAdvancedKeywords(g2ctx, transcript, rawTexts, info.Title)
		return nil
	})
	_ = g2.Wait()

	// Step 4: Clean and translate comments. Too-short comments drop out.
	type preprocessed struct {
		text     string
		original string
		author   string
	}
	var valid []preprocessed
	for _, c := range raw {
		cleaned := cleanCommentText(c.Text)
		if utf8.RuneCountInString(cleaned) <= analysis.MinCommentLength {
			continue
		}
		translated := uc.translateToKorean(ctx, cleaned)
		p := preprocessed{text: translated, author: c.Author}
		if translated != cleaned {
			p.original = cleaned
		}
		valid = append(valid, p)
	}

	// Step 5: Batch sentiment analysis
	texts := make([]string, len(valid))
	for i, p := range valid {
		texts[i] = p.text
	}
	sentiments := uc.analyzeSentimentBatch(ctx, texts)

	// Step 6: Per-comment features and keywords
	comments := make([]model.Comment, len(valid))
	translationApplied := false
	for i, p := range valid {
		if p.original != "" {
			translationApplied = true
		}
		comments[i] = model.Comment{
			Author:       p.author,
			Text:         p.text,
			OriginalText: p.original,
			Sentiment:    sentiments[i],
			Keywords:     extractBasicKeywords(p.text),
			Analysis:     analyzeCommentFeatures(p.text),
		}
	}

	// Step 7: Aggregate
	counts, dist := sentimentDistribution(comments)
	representative := selectRepresentativeComments(comments, analysis.RepresentativePerSentiment)
	trends := analyzeCommentTrends(comments)

	returned := comments
	if len(returned) > uc.cfg.MaxReturnedComments {
		returned = returned[:uc.cfg.MaxReturnedComments]
	}

	dataSource := model.DataSourceFallback
	if fromAPI {
		dataSource = model.DataSourceAPI
	}

	output := analysis.AnalyzeOutput{
		Summary:                summary,
		VideoInfo:              info,
		Comments:               returned,
		RepresentativeComments: representative,
		Trends:                 trends,
		Visual: analysis.Visual{
			SentimentDistribution: dist,
			TopKeywords:           topKeywords,
		},
		Metadata: analysis.Metadata{
			TotalComments:      len(comments),
			HasTranscript:      hasTrack,
			DataSource:         dataSource,
			CommentLimit:       input.CommentLimit,
			TranslationApplied: translationApplied,
			LLMUsed:            uc.llm != nil,
		},
	}

	// Step 8: Cache the result
	if uc.cacheRepo != nil {
		if data, err := json.Marshal(output); err == nil {
			if err := uc.cacheRepo.SaveAnalysis(ctx, cacheKey, data); err != nil {
				uc.l.Warnf(ctx, "analysis.usecase.Analyze: cache save failed: %v", err)
			}
		}
	}

	// Step 9: Persist the run and publish the completion event
	uc.recordRun(ctx, videoID, output, counts)

	uc.l.Infof(ctx, "analysis.usecase.Analyze: done videoID=%s comments=%d transcript=%v source=%s",
		videoID, len(comments), hasTrack, dataSource)

	return output, nil
}

func (uc *implUseCase) validateInput(input analysis.AnalyzeInput) (string, error) {
	if input.URL == "" {
		return "", analysis.ErrURLRequired
	}
	if input.CommentLimit == 0 || input.CommentLimit < analysis.AllComments {
		return "", analysis.ErrInvalidCommentLimit
	}
	videoID, ok := youtube.ExtractVideoID(input.URL)
	if !ok {
		return "", analysis.ErrInvalidURL
	}
	return videoID, nil
}
