package trend

import (
	"context"

	"trend-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Predict asks the LLM for a trend call and falls back to Combine on any failure.
	Predict(ctx context.Context, sentiment model.SentimentResult, forecast model.ForecastResult, signal model.HistoricalSignal) model.TrendPrediction
	// Combine is the deterministic weighted-score policy. market may be nil.
	Combine(sentiment model.SentimentResult, forecast model.ForecastResult, market *model.SearchInterest) model.TrendPrediction
}
