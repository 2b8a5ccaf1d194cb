package usecase

import (
	"math"

	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

// syntheticReport is returned when the pipeline cannot finish. It is never cached.
func (uc *implUseCase) syntheticReport(product string, ids []string) *model.AnalysisReport {
	sources := make([]string, len(ids))
	copy(sources, ids)

	return &model.AnalysisReport{
		Product: product,
		Sentiment: model.SentimentResult{
			OverallSentiment:   model.SentimentNeutral,
			ConfidenceScore:    0.7,
			KeyPositiveAspects: []string{"performance", "design"},
			KeyNegativeAspects: []string{"price"},
			SampleSize:         25,
			SentimentBreakdown: model.NewBreakdown(10, 5, 10),
			CommonThemes:       []string{"quality", "value"},
		},
		TrendPrediction: model.TrendPrediction{
			PredictedTrend:   model.PredictedStable,
			Confidence:       0.7,
			Reasoning:        "Fallback analysis - insufficient data",
			ExpectedTimeline: model.TimelineShortTerm,
			Factors:          []string{"Limited data availability"},
		},
		TrendData: uc.syntheticChart(product, func(i int, r float64) (float64, float64) {
			return util.Round(r/10, 2), math.Max(0, 45+float64(i%7)*2+r)
		}),
		RawData: model.RawData{
			SamplePosts: []model.Post{},
			SalesForecast: model.ForecastResult{
				ModelUsed: model.ForecastModelMinimal,
				Series:    []model.ForecastPoint{},
				Trend:     model.ForecastTrendStable,
			},
			SourcesUsed: sources,
			SalesData:   []model.SalesPoint{},
		},
		Timestamp: uc.now().UTC(),
		Degraded:  true,
	}
}
