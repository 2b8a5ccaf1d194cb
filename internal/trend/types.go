package trend

import (
	"fmt"
	"strings"

	"trend-srv/internal/model"
)

// LLMResult is the JSON contract the LLM must answer with. Only PredictedTrend
// is required.
type LLMResult struct {
	PredictedTrend   string   `json:"predicted_trend"`
	Confidence       *float64 `json:"confidence"`
	Reasoning        string   `json:"reasoning"`
	ExpectedTimeline string   `json:"expected_timeline"`
	Factors          []string `json:"factors"`
}

func (r *LLMResult) Validate() error {
	r.PredictedTrend = strings.ToLower(strings.TrimSpace(r.PredictedTrend))
	if !model.IsValidPredictedTrend(r.PredictedTrend) {
		return fmt.Errorf("%w: %q", ErrInvalidTrend, r.PredictedTrend)
	}
	return nil
}

// PromptInput is serialized into the trend prompt.
type PromptInput struct {
	Sentiment  model.SentimentResult  `json:"sentiment"`
	Historical model.HistoricalSignal `json:"historical"`
	Forecast   ForecastSummary        `json:"sales_forecast"`
}

// ForecastSummary is the part of a forecast worth showing the LLM.
type ForecastSummary struct {
	ModelUsed  string  `json:"model_used"`
	Trend      string  `json:"trend"`
	Confidence float64 `json:"confidence"`
	Periods    int     `json:"periods"`
}
