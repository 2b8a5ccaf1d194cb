package usecase

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

const minStatisticalPoints = 10

// growthThreshold is the relative change between halves that counts as a trend.
const growthThreshold = 0.10

// futureDate returns the day h days after anchor.
func futureDate(anchor time.Time, h int) time.Time {
	return util.StartOfDay(anchor).AddDate(0, 0, h)
}

// dayNumber is the number of days since the unix epoch.
func dayNumber(t time.Time) float64 {
	return float64(util.StartOfDay(t).Unix()) / 86400
}

func values(series []model.SalesPoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Value
	}
	return out
}

func tail(series []model.SalesPoint, n int) []model.SalesPoint {
	if len(series) <= n {
		return series
	}
	return series[len(series)-n:]
}

// classifyTrend compares the mean of the second half of vals with the first.
func classifyTrend(vals []float64) string {
	if len(vals) < 2 {
		return model.ForecastTrendStable
	}
	half := len(vals) / 2
	first := stat.Mean(vals[:half], nil)
	second := stat.Mean(vals[half:], nil)
	if first == 0 {
		return model.ForecastTrendStable
	}

	change := (second - first) / math.Abs(first)
	switch {
	case change > growthThreshold:
		return model.ForecastTrendGrowing
	case change < -growthThreshold:
		return model.ForecastTrendDeclining
	default:
		return model.ForecastTrendStable
	}
}

// intervalConfidence turns the average relative interval width into a confidence.
func intervalConfidence(points []model.ForecastPoint) float64 {
	allZero := true
	hasBounds := false
	var sum float64
	var count int
	for _, p := range points {
		if p.PredictedValue != 0 {
			allZero = false
		}
		if p.LowerBound == nil || p.UpperBound == nil {
			continue
		}
		hasBounds = true
		if p.PredictedValue == 0 {
			continue
		}
		sum += (*p.UpperBound - *p.LowerBound) / math.Abs(p.PredictedValue)
		count++
	}

	switch {
	case allZero:
		return 0.5
	case !hasBounds:
		return 0.6
	case count == 0:
		return 0.5
	}
	return util.Round(util.Clamp(1-(sum/float64(count))/2, 0.3, 0.9), 2)
}
