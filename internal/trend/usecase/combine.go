package usecase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"trend-srv/internal/model"
)

const (
	sentimentWeight  = 0.6
	forecastWeight   = 0.4
	surgeThreshold   = 0.7
	dropThreshold    = 0.4
	stableConfidence = 0.7
	fullSampleSize   = 50.0

	reasonSurge  = "Strong positive sentiment combined with upward sales forecast indicates potential surge"
	reasonDrop   = "Negative sentiment and declining forecast suggest potential drop"
	reasonStable = "Mixed signals with moderate sentiment and stable forecast"
)

const (
	interestRising  = "rising"
	interestFalling = "falling"
	interestFlat    = "flat"
)

// Combine - Weighted blend of sentiment and forecast direction
func (uc *implUseCase) Combine(s model.SentimentResult, f model.ForecastResult, market *model.SearchInterest) model.TrendPrediction {
	final := sentimentWeight*sentimentScore(s) + forecastWeight*forecastScore(f)

	var p model.TrendPrediction
	switch {
	case final > surgeThreshold:
		p = model.TrendPrediction{
			PredictedTrend:   model.PredictedSurge,
			Confidence:       final,
			Reasoning:        reasonSurge,
			ExpectedTimeline: model.TimelineShortTerm,
		}
	case final < dropThreshold:
		p = model.TrendPrediction{
			PredictedTrend:   model.PredictedDrop,
			Confidence:       1 - final,
			Reasoning:        reasonDrop,
			ExpectedTimeline: model.TimelineMediumTerm,
		}
	default:
		p = model.TrendPrediction{
			PredictedTrend:   model.PredictedStable,
			Confidence:       stableConfidence,
			Reasoning:        reasonStable,
			ExpectedTimeline: model.TimelineShortTerm,
		}
	}

	trend := f.Trend
	if trend == "" {
		trend = model.ForecastTrendStable
	}
	p.Factors = []string{
		fmt.Sprintf("Sentiment: %s (confidence: %.2f)", s.OverallSentiment, s.ConfidenceScore),
		fmt.Sprintf("Sales forecast: %s", trend),
		fmt.Sprintf("Sample size: %d sources", s.SampleSize),
	}
	if dir, ok := interestDirection(market); ok {
		p.Factors = append(p.Factors, fmt.Sprintf("Search interest: %s", dir))
	}
	return p
}

func sentimentScore(s model.SentimentResult) float64 {
	base := 0.5
	switch s.OverallSentiment {
	case model.SentimentPositive:
		base = 0.8
	case model.SentimentNegative:
		base = 0.2
	}
	sample := math.Min(float64(s.SampleSize)/fullSampleSize, 1)
	return base * s.ConfidenceScore * (0.7 + 0.3*sample)
}

func forecastScore(f model.ForecastResult) float64 {
	switch f.Trend {
	case model.ForecastTrendGrowing:
		return 0.8
	case model.ForecastTrendDeclining:
		return 0.2
	default:
		return 0.5
	}
}

// interestDirection compares the later half of the search interest with the earlier half.
func interestDirection(si *model.SearchInterest) (string, bool) {
	if si == nil || len(si.Points) < 2 {
		return "", false
	}
	vals := make([]float64, len(si.Points))
	for i, p := range si.Points {
		vals[i] = p.Value
	}
	half := len(vals) / 2
	first := stat.Mean(vals[:half], nil)
	second := stat.Mean(vals[half:], nil)

	switch {
	case first == 0 && second > 0:
		return interestRising, true
	case first == 0:
		return interestFlat, true
	case (second-first)/first > 0.1:
		return interestRising, true
	case (second-first)/first < -0.1:
		return interestFalling, true
	default:
		return interestFlat, true
	}
}
