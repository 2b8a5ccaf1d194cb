package forecast

import (
	"context"

	"trend-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Forecast projects periods days past the end of series. It never fails; the
	// result's ModelUsed names the tier that produced it.
	Forecast(ctx context.Context, series []model.SalesPoint, periods int) model.ForecastResult
	// LoadSeries returns the stored sales history of product, or a deterministic
	// synthetic year when none is stored.
	LoadSeries(ctx context.Context, product string) []model.SalesPoint
}

// Strategy is one tier of the forecast chain.
type Strategy interface {
	Name() string
	IsApplicable(series []model.SalesPoint) bool
	Fit(series []model.SalesPoint, periods int) (model.ForecastResult, error)
}
