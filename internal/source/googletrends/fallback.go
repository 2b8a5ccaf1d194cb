package googletrends

import (
	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

var fallbackValues = []float64{48, 52, 50, 55, 53, 51, 54}

// Fallback returns a flat week of interest and a fixed regional split.
func (a *adapter) Fallback(_ string) source.Result {
	n := len(fallbackValues)
	points := make([]model.InterestPoint, 0, n)
	for i, v := range fallbackValues {
		points = append(points, model.InterestPoint{Date: source.DaysAgo(n - 1 - i), Value: v})
	}
	return source.Result{
		Source: model.SourceGoogleTrends,
		Interest: &model.SearchInterest{
			Points:   points,
			ByRegion: map[string]int{"US": 100, "IN": 85, "UK": 75},
		},
		Synthetic: true,
	}
}
