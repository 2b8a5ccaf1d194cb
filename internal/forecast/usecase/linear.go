package usecase

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"

	"trend-srv/internal/model"
)

const (
	linearWindow     = 10
	linearFloor      = 10.0
	linearNoiseSD    = 2.0
	linearSeedBase   = 42
	linearConfidence = 0.5

	// Used when there is no history at all.
	defaultLastValue = 100.0
	defaultSlope     = 0.5
)

// linearStrategy extrapolates a least squares line through the last few
// points with small reproducible noise. It accepts any finite series.
type linearStrategy struct {
	now func() time.Time
}

func (linearStrategy) Name() string { return model.ForecastModelLinear }

func (linearStrategy) IsApplicable([]model.SalesPoint) bool { return true }

func (s linearStrategy) Fit(series []model.SalesPoint, periods int) (model.ForecastResult, error) {
	window := tail(series, linearWindow)

	var (
		last, slope float64
		anchor      time.Time
		reason      string
	)
	switch len(window) {
	case 0:
		last, slope = defaultLastValue, defaultSlope
		anchor = s.now()
		reason = "no sales history"
	case 1:
		last = window[0].Value
		anchor = window[0].Date
		reason = "single data point"
	default:
		ys := values(window)
		xs := make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
		_, slope = stat.LinearRegression(xs, ys, nil, false)
		last = ys[len(ys)-1]
		anchor = window[len(window)-1].Date
	}

	points := make([]model.ForecastPoint, periods)
	for i := 1; i <= periods; i++ {
		noise := rand.New(rand.NewSource(int64(linearSeedBase+i))).NormFloat64() * linearNoiseSD
		points[i-1] = model.ForecastPoint{
			Date:           futureDate(anchor, i),
			PredictedValue: math.Max(linearFloor, last+slope*float64(i)+noise),
		}
	}

	if reason == "" && len(series) < minStatisticalPoints {
		reason = "insufficient data for statistical models"
	}

	return model.ForecastResult{
		ModelUsed:      s.Name(),
		Series:         points,
		Confidence:     linearConfidence,
		DataPointsUsed: len(window),
		FallbackReason: reason,
	}, nil
}

