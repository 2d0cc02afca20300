package youtube

import "time"

const (
	// DefaultBaseURL is the YouTube Data API v3 endpoint.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultTimeout bounds one API call.
	DefaultTimeout = 15 * time.Second

	// MaxCommentsPerPage is the API ceiling for commentThreads.list.
	MaxCommentsPerPage = 100

	// MaxVideosPerList is the API ceiling for videos.list ids.
	MaxVideosPerList = 50

	// OrderRelevance and friends are valid search.list orders.
	OrderRelevance = "relevance"
	OrderViewCount = "viewCount"
	OrderDate      = "date"
)
