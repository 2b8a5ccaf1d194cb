package sentiment

import (
	"fmt"
	"strings"

	"trend-srv/internal/model"
)

// PromptPost is the per-post context sent to the LLM.
type PromptPost struct {
	Text       string  `json:"text"`
	Source     string  `json:"source"`
	Engagement float64 `json:"engagement"`
	Rating     int     `json:"rating"`
	Verified   bool    `json:"verified"`
}

// LLMResult is the JSON contract the LLM must answer with.
type LLMResult struct {
	OverallSentiment   string         `json:"overall_sentiment"`
	ConfidenceScore    *float64       `json:"confidence_score"`
	KeyPositiveAspects []string       `json:"key_positive_aspects"`
	KeyNegativeAspects []string       `json:"key_negative_aspects"`
	SampleSize         *int           `json:"sample_size"`
	SentimentBreakdown map[string]any `json:"sentiment_breakdown"`
	CommonThemes       []string       `json:"common_themes"`
}

// Validate rejects answers whose label is not one of the three sentiment labels.
func (r *LLMResult) Validate() error {
	r.OverallSentiment = strings.ToLower(strings.TrimSpace(r.OverallSentiment))
	if !model.IsValidSentiment(r.OverallSentiment) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, r.OverallSentiment)
	}
	return nil
}
