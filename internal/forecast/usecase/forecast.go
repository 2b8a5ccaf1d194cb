package usecase

import (
	"context"
	"fmt"
	"sort"

	"trend-srv/internal/metrics"
	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

// Forecast - Run the strategy chain and return the first tier that fits
// Flow: validate input → advanced → intermediate → fallback_linear → (malformed) minimal
func (uc *implUseCase) Forecast(ctx context.Context, series []model.SalesPoint, periods int) model.ForecastResult {
	if periods <= 0 {
		periods = uc.cfg.DefaultPeriods
	}

	// Step 1: Malformed input short-circuits to the minimal result
	if !seriesFinite(series) {
		uc.l.Warnf(ctx, "forecast.usecase.Forecast: non-finite values in series of %d points", len(series))
		return uc.finish(minimalResult(periods, len(series), "non-finite values in series"))
	}
	series = sortedByDate(series)

	// Step 2: Walk the chain
	var reason string
	for _, s := range uc.strategies {
		if !s.IsApplicable(series) {
			reason = fmt.Sprintf("%s skipped: %d data points", s.Name(), len(series))
			continue
		}

		res, err := s.Fit(series, periods)
		if err == nil && !forecastFinite(res) {
			err = fmt.Errorf("%s produced non-finite values", s.Name())
		}
		if err != nil {
			uc.l.Warnf(ctx, "forecast.usecase.Forecast: %s failed: %v", s.Name(), err)
			reason = fmt.Sprintf("%s failed: %v", s.Name(), err)
			continue
		}

		// Step 3: Shared post-processing
		res.Success = true
		res.Periods = periods
		res.Trend = classifyTrend(res.Values())
		if res.ModelUsed != model.ForecastModelAdvanced && res.FallbackReason == "" {
			res.FallbackReason = reason
		}
		return uc.finish(res)
	}

	return uc.finish(minimalResult(periods, len(series), reason))
}

func (uc *implUseCase) finish(res model.ForecastResult) model.ForecastResult {
	res.GeneratedAt = uc.now().UTC()
	metrics.IncForecastModel(res.ModelUsed)
	return res
}

func minimalResult(periods, used int, reason string) model.ForecastResult {
	return model.ForecastResult{
		ModelUsed:      model.ForecastModelMinimal,
		Success:        false,
		Series:         []model.ForecastPoint{},
		Trend:          model.ForecastTrendStable,
		Confidence:     0.3,
		Periods:        periods,
		DataPointsUsed: used,
		FallbackReason: reason,
	}
}

func seriesFinite(series []model.SalesPoint) bool {
	for _, p := range series {
		if !util.IsFinite(p.Value) {
			return false
		}
	}
	return true
}

func forecastFinite(res model.ForecastResult) bool {
	for _, p := range res.Series {
		if !util.IsFinite(p.PredictedValue) {
			return false
		}
		if p.LowerBound != nil && !util.IsFinite(*p.LowerBound) {
			return false
		}
		if p.UpperBound != nil && !util.IsFinite(*p.UpperBound) {
			return false
		}
	}
	return true
}

func sortedByDate(series []model.SalesPoint) []model.SalesPoint {
	out := make([]model.SalesPoint, len(series))
	copy(out, series)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
