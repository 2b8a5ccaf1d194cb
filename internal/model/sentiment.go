package model

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// SentimentResult summarizes how a set of posts feels about a product.
type SentimentResult struct {
	OverallSentiment   string         `json:"overall_sentiment"`
	ConfidenceScore    float64        `json:"confidence_score"`
	KeyPositiveAspects []string       `json:"key_positive_aspects"`
	KeyNegativeAspects []string       `json:"key_negative_aspects"`
	SampleSize         int            `json:"sample_size"`
	SentimentBreakdown map[string]int `json:"sentiment_breakdown"`
	CommonThemes       []string       `json:"common_themes"`
}

// IsValidSentiment reports whether label is one of the three sentiment labels.
func IsValidSentiment(label string) bool {
	switch label {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// NewBreakdown returns a breakdown with every label present.
func NewBreakdown(positive, negative, neutral int) map[string]int {
	return map[string]int{
		SentimentPositive: positive,
		SentimentNegative: negative,
		SentimentNeutral:  neutral,
	}
}
