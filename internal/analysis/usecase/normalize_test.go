package usecase

import "testing"

func TestCleanCommentText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "strips html tags",
			text: "<b>정말</b> 좋은 <a href=\"x\">영상</a>",
			want: "정말 좋은 영상",
		},
		{
			name: "strips urls",
			text: "여기 보세요 https://youtu.be/abc123xyz00 추천합니다",
			want: "여기 보세요 추천합니다",
		},
		{
			name: "collapses whitespace",
			text: "  줄바꿈이\n\n있는\t댓글  ",
			want: "줄바꿈이 있는 댓글",
		},
		{
			name: "decodes html entities",
			text: "Tom &amp; Jerry &quot;최고&quot; &lt;3",
			want: `Tom & Jerry "최고" <3`,
		},
		{
			name: "url at end leaves no trailing space",
			text: "링크 https://example.com/watch?v=abc",
			want: "링크",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanCommentText(tt.text); got != tt.want {
				t.Errorf("cleanCommentText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
