package model

const (
	PredictedSurge  = "surge"
	PredictedDrop   = "drop"
	PredictedStable = "stable"

	TimelineShortTerm  = "short_term"
	TimelineMediumTerm = "medium_term"
	TimelineLongTerm   = "long_term"
)

// TrendPrediction is the final call on where a product is heading.
type TrendPrediction struct {
	PredictedTrend   string   `json:"predicted_trend"`
	Confidence       float64  `json:"confidence"`
	Reasoning        string   `json:"reasoning"`
	ExpectedTimeline string   `json:"expected_timeline"`
	Factors          []string `json:"factors"`
}

// HistoricalSignal is the market context handed to the trend predictor.
type HistoricalSignal struct {
	Mentions        int             `json:"mentions"`
	TotalEngagement float64         `json:"engagement"`
	TimePeriod      string          `json:"time_period"`
	SearchInterest  *SearchInterest `json:"google_trends,omitempty"`
}

// IsValidPredictedTrend reports whether v is surge, drop or stable.
func IsValidPredictedTrend(v string) bool {
	switch v {
	case PredictedSurge, PredictedDrop, PredictedStable:
		return true
	}
	return false
}

// IsValidTimeline reports whether v is one of the timeline labels.
func IsValidTimeline(v string) bool {
	switch v {
	case TimelineShortTerm, TimelineMediumTerm, TimelineLongTerm:
		return true
	}
	return false
}
