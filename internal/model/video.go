package model

// VideoInfo is display metadata for the analyzed video. Duration and
// Views are pre-formatted for presentation.
type VideoInfo struct {
	Title        string
	Thumbnail    string
	Duration     string
	Views        string
	Description  string
	PublishedAt  string
	ChannelTitle string
}

// TrendKeyword is one entry of the trending keyword board.
type TrendKeyword struct {
	Rank         int
	Keyword      string
	Category     string
	Change       string
	SearchVolume string
}

// TrendVideo is one entry of the trending video board.
type TrendVideo struct {
	VideoID     string
	Title       string
	ChannelName string
	Thumbnail   string
	ViewCount   string
	PublishedAt string
	URL         string
	Keyword     string
}
