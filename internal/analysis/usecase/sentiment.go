package usecase

import (
	"regexp"
	"strings"

	"insight-srv/internal/model"
)

var positiveWords = []string{
	"좋", "최고", "대박", "완벽", "멋진", "훌륭", "감사", "사랑", "행복", "기쁨",
	"놀라운", "환상적", "굉장", "멋져", "예뻐", "이쁘", "재밌", "웃겨", "유익",
	"도움", "고마워", "감동", "신기", "놀라", "최고예요", "좋아요", "짱", "킹", "갓",
	"흥미", "재미", "신남", "놀랍", "성공", "승리", "기대", "즐거", "행운", "축하",
}

var negativeWords = []string{
	"나쁜", "최악", "싫어", "실망", "화나", "짜증", "별로", "지루", "무서운", "끔찍",
	"아쉽", "안좋", "못하", "틀렸", "구린", "이상", "문제", "싫다", "안됨", "별로다",
	"실패", "걱정", "우울", "슬프", "답답", "힘들", "어려", "불편", "불만", "비판",
}

var neutralWords = []string{
	"그냥", "보통", "평범", "일반", "괜찮", "그럭저럭", "애매", "모르겠", "글쎄",
	"음", "어", "뭐", "그래", "아", "오", "이", "저", "그거", "그런데",
}

var positiveEmojis = []rune("😀😃😄😁😆😊😍🥰😘🤩🤗👍💕❤🔥💯✨🎉")
var negativeEmojis = []rune("😞😢😭😠😡🤬👎💔😰😱😤😒😔")

var (
	exclamationRunRegex = regexp.MustCompile(`!{2,}`)
	questionRunRegex    = regexp.MustCompile(`\?{2,}`)
	cryingRegex         = regexp.MustCompile(`ㅠㅠ|ㅜㅜ|ㅡㅡ`)
	laughingRegex       = regexp.MustCompile(`ㅋㅋ|ㅎㅎ|ㅇㅇ`)
)

// analyzeSentimentBasic scores a comment against the Korean sentiment
// lexicons plus emoji and interjection signals. Ties resolve to
// neutral.
func analyzeSentimentBasic(text string) string {
	lowerText := strings.ToLower(text)

	var positiveScore, negativeScore, neutralScore float64

	for _, word := range positiveWords {
		positiveScore += float64(strings.Count(lowerText, word))
	}
	for _, word := range negativeWords {
		negativeScore += float64(strings.Count(lowerText, word))
	}
	for _, word := range neutralWords {
		// Neutral words carry half weight.
		neutralScore += float64(strings.Count(lowerText, word)) * 0.5
	}

	// Emojis weigh double.
	for _, r := range text {
		for _, e := range positiveEmojis {
			if r == e {
				positiveScore += 2
			}
		}
		for _, e := range negativeEmojis {
			if r == e {
				negativeScore += 2
			}
		}
	}

	// Interjections and repeated punctuation.
	if exclamationRunRegex.MatchString(text) {
		positiveScore++
	}
	if questionRunRegex.MatchString(text) {
		neutralScore++
	}
	if cryingRegex.MatchString(text) {
		negativeScore++
	}
	if laughingRegex.MatchString(text) {
		positiveScore += 0.5
	}

	if positiveScore > negativeScore && positiveScore > neutralScore {
		return model.SentimentPositive
	}
	if negativeScore > positiveScore && negativeScore > neutralScore {
		return model.SentimentNegative
	}
	return model.SentimentNeutral
}
