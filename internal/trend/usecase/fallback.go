package usecase

import (
	"fmt"

	"insight-srv/internal/model"
	"insight-srv/internal/trend"
)

var mockKeywordPool = []model.TrendKeyword{
	{Keyword: "ChatGPT 4.0", Category: "기술"},
	{Keyword: "AI 코딩", Category: "교육"},
	{Keyword: "인공지능 투자", Category: "뉴스"},
	{Keyword: "GPT API", Category: "기술"},
	{Keyword: "머신러닝 강의", Category: "교육"},
	{Keyword: "AI 그림", Category: "엔터테인먼트"},
	{Keyword: "자동화 프로그램", Category: "기술"},
	{Keyword: "AI 음성", Category: "기술"},
	{Keyword: "딥러닝 튜토리얼", Category: "교육"},
	{Keyword: "AI 스타트업", Category: "뉴스"},
	{Keyword: "로봇 기술", Category: "기술"},
	{Keyword: "AI 번역", Category: "기술"},
	{Keyword: "메타버스 플랫폼", Category: "기술"},
	{Keyword: "블록체인 기술", Category: "기술"},
	{Keyword: "VR 게임", Category: "게임"},
	{Keyword: "자율주행차", Category: "기술"},
	{Keyword: "스마트홈", Category: "기술"},
	{Keyword: "IoT 디바이스", Category: "기술"},
	{Keyword: "빅데이터 분석", Category: "기술"},
	{Keyword: "클라우드 서비스", Category: "기술"},
}

// mockKeywordBoard builds the fallback keyword board from the static
// pool: shuffled, ranked, with randomized change and volume markers.
func (uc *implUseCase) mockKeywordBoard() []model.TrendKeyword {
	pool := make([]model.TrendKeyword, len(mockKeywordPool))
	copy(pool, mockKeywordPool)
	uc.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > uc.cfg.KeywordBoardSize {
		pool = pool[:uc.cfg.KeywordBoardSize]
	}
	for i := range pool {
		pool[i].Rank = i + 1
		pool[i].Change = uc.randomChange()
		pool[i].SearchVolume = uc.randomSearchVolume()
	}
	return pool
}

func (uc *implUseCase) randomChange() string {
	return trend.ChangeValues[uc.randIntn(len(trend.ChangeValues))]
}

func (uc *implUseCase) randomSearchVolume() string {
	return fmt.Sprintf("%d만", uc.randIntn(50)+10)
}

var mockVideoTemplates = []struct {
	id          string
	title       string
	views       string
	channel     string
	publishedAt string
}{
	{"mock1", "%s 완벽 가이드 - 초보자도 이해할 수 있는 쉬운 설명", "15.2만회", "테크 트렌드", "1일 전"},
	{"mock2", "%s 최신 트렌드 분석 2024 - 지금 꼭 알아야 할 것들", "8.7만회", "인기 유튜버", "3일 전"},
	{"mock3", "%s에 대해 알아야 할 모든 것 - 전문가 인터뷰", "23.1만회", "전문가 채널", "5일 전"},
	{"mock4", "%s 실시간 리뷰 및 반응 - 솔직한 후기", "5.4만회", "리뷰어", "2일 전"},
	{"mock5", "%s 2024년 최신 업데이트 소식 - 놓치면 안 되는 정보", "12.8만회", "뉴스 채널", "4일 전"},
	{"mock6", "%s 실전 활용법 - 지금 바로 시작하는 방법", "7.3만회", "실용 채널", "6일 전"},
	{"mock7", "%s 입문자를 위한 기초 강의 - 무료 강의", "31.5만회", "교육 채널", "1주 전"},
	{"mock8", "%s 성공 사례 분석 - 실제 적용 후기", "9.2만회", "성공스토리", "3일 전"},
	{"mock9", "%s vs 기존 방식 비교 - 어떤 게 더 좋을까?", "6.8만회", "비교 분석", "5일 전"},
	{"mock10", "%s 미래 전망 - 전문가들의 예측", "18.4만회", "미래 연구소", "2일 전"},
	{"mock11", "%s 문제점과 해결책 - 현실적인 접근", "4.7만회", "문제 해결사", "4일 전"},
	{"mock12", "%s 최고의 도구들 - 추천 리스트 TOP 10", "14.6만회", "도구 리뷰", "1주 전"},
}

// mockVideoBoard builds the fallback video board for a keyword.
func mockVideoBoard(keyword string) []model.TrendVideo {
	videos := make([]model.TrendVideo, 0, len(mockVideoTemplates))
	for _, t := range mockVideoTemplates {
		videos = append(videos, model.TrendVideo{
			VideoID:     t.id,
			Title:       fmt.Sprintf(t.title, keyword),
			ChannelName: t.channel,
			Thumbnail:   "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg",
			ViewCount:   t.views,
			PublishedAt: t.publishedAt,
			URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Keyword:     keyword,
		})
	}
	return videos
}
