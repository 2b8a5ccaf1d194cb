package sentiment

import "errors"

var (
	ErrLLMUnavailable = errors.New("sentiment: llm client not configured")
	ErrInvalidLabel   = errors.New("sentiment: invalid overall_sentiment label")
	ErrNoPosts        = errors.New("sentiment: no posts to analyze")
)
