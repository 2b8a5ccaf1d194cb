package usecase

import (
	"context"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"trend-srv/internal/forecast/repository"
	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

const (
	syntheticBase      = 100.0
	syntheticAmplitude = 20.0
	syntheticGrowth    = 50.0
	syntheticNoiseSD   = 10.0
	syntheticFloor     = 20.0
)

// LoadSeries - Load the stored history, synthesizing one when none is stored
func (uc *implUseCase) LoadSeries(ctx context.Context, product string) []model.SalesPoint {
	today := util.StartOfDay(uc.now())

	if uc.repo != nil {
		points, err := uc.repo.ListSales(ctx, repository.ListSalesOptions{
			Product: product,
			Since:   today.AddDate(0, 0, -uc.cfg.HistoryDays),
		})
		if err != nil {
			uc.l.Warnf(ctx, "forecast.usecase.LoadSeries: repository failed, synthesizing: %v", err)
		} else if len(points) > 0 {
			return points
		}
	}

	return syntheticSeries(product, uc.cfg.HistoryDays, today)
}

// syntheticSeries builds days of seasonal, slowly growing sales ending at end.
// The same product always yields the same series.
func syntheticSeries(product string, days int, end time.Time) []model.SalesPoint {
	if days < 2 {
		days = 2
	}
	rng := rand.New(rand.NewSource(util.SeedFromString(util.NormalizeText(product))))
	growth := floats.Span(make([]float64, days), 0, syntheticGrowth)

	out := make([]model.SalesPoint, days)
	for i := range out {
		d := end.AddDate(0, 0, i-days+1)
		season := syntheticAmplitude * math.Sin(2*math.Pi*float64(d.YearDay())/365)
		v := syntheticBase + season + growth[i] + rng.NormFloat64()*syntheticNoiseSD
		out[i] = model.SalesPoint{Date: d, Value: math.Max(syntheticFloor, v)}
	}
	return out
}
