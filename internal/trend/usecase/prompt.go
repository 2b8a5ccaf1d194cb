package usecase

import (
	"encoding/json"
	"fmt"

	"trend-srv/internal/model"
	"trend-srv/internal/trend"
)

const promptTemplate = `As a market trend analyst, predict product performance based on this data.

MARKET DATA (sentiment analysis, historical data and sales forecast):
%s

Provide trend prediction with this EXACT JSON structure:
{
    "predicted_trend": "surge|drop|stable",
    "confidence": 0.0-1.0,
    "reasoning": "comprehensive explanation considering all factors",
    "expected_timeline": "short_term|medium_term|long_term",
    "factors": ["factor1", "factor2", "factor3"]
}`

func buildPrompt(s model.SentimentResult, f model.ForecastResult, signal model.HistoricalSignal) (string, error) {
	data, err := json.Marshal(trend.PromptInput{
		Sentiment:  s,
		Historical: signal,
		Forecast: trend.ForecastSummary{
			ModelUsed:  f.ModelUsed,
			Trend:      f.Trend,
			Confidence: f.Confidence,
			Periods:    f.Periods,
		},
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(promptTemplate, data), nil
}
