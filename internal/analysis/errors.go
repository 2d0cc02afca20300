package analysis

import "errors"

// Domain errors
var (
	// ErrURLRequired - request carried no URL
	ErrURLRequired = errors.New("analysis: url is required")

	// ErrInvalidURL - URL carries no recognizable video ID
	ErrInvalidURL = errors.New("analysis: not a valid YouTube URL")

	// ErrInvalidCommentLimit - comment_limit is 0 or below -1
	ErrInvalidCommentLimit = errors.New("analysis: invalid comment limit")

	// ErrAnalysisFailed - pipeline failure after data collection
	ErrAnalysisFailed = errors.New("analysis: analysis failed")
)
