package usecase

import (
	"time"

	"trend-srv/internal/forecast"
	"trend-srv/internal/forecast/repository"
	"trend-srv/internal/model"
	"trend-srv/pkg/log"
)

// Config tunes the forecast engine.
type Config struct {
	DefaultPeriods int // days projected when the caller passes 0 (default 30)
	HistoryDays    int // length of the loaded or synthesized history (default 365)
}

// DefaultConfig returns the default engine config.
func DefaultConfig() Config {
	return Config{
		DefaultPeriods: model.DefaultForecastPeriods,
		HistoryDays:    365,
	}
}

type implUseCase struct {
	l          log.Logger
	repo       repository.SalesRepository
	strategies []forecast.Strategy
	cfg        Config
	now        func() time.Time
}

// New creates the forecast engine. repo may be nil, in which case LoadSeries
// always synthesizes the history.
func New(l log.Logger, repo repository.SalesRepository, cfg Config) forecast.UseCase {
	def := DefaultConfig()
	if cfg.DefaultPeriods <= 0 {
		cfg.DefaultPeriods = def.DefaultPeriods
	}
	if cfg.HistoryDays < 30 {
		cfg.HistoryDays = def.HistoryDays
	}

	uc := &implUseCase{
		l:    l,
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
	uc.strategies = []forecast.Strategy{
		advancedStrategy{},
		arimaStrategy{},
		linearStrategy{now: uc.clock},
	}
	return uc
}

func (uc *implUseCase) clock() time.Time {
	return uc.now()
}
