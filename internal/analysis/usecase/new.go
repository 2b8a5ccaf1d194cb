package usecase

import (
	"time"

	"trend-srv/internal/analysis"
	"trend-srv/internal/analysis/repository"
	"trend-srv/internal/analysis/repository/memory"
	"trend-srv/internal/forecast"
	"trend-srv/internal/model"
	"trend-srv/internal/sentiment"
	"trend-srv/internal/source"
	"trend-srv/internal/trend"
	"trend-srv/pkg/log"
)

// Config tunes report assembly.
type Config struct {
	SamplePosts     int      // posts copied into raw_data.sample_posts (default 10)
	SalesDataPoints int      // history points copied into raw_data.sales_data (default 30)
	ForecastPeriods int      // days projected by the forecast engine (default 30)
	ChartDays       int      // length of the synthetic chart (default 30)
	ListLimit       int      // maximum summaries returned by List (default 1000)
	DefaultSources  []string // what "default" expands to (default all seven)
}

// DefaultConfig returns the default orchestrator config.
func DefaultConfig() Config {
	return Config{
		SamplePosts:     10,
		SalesDataPoints: 30,
		ForecastPeriods: model.DefaultForecastPeriods,
		ChartDays:       30,
		ListLimit:       analysis.MaxListLimit,
		DefaultSources:  model.DefaultSources(),
	}
}

type implUseCase struct {
	l           log.Logger
	registry    *source.Registry
	sentimentUC sentiment.UseCase
	forecastUC  forecast.UseCase
	trendUC     trend.UseCase
	cache       repository.CacheRepository
	repo        repository.AnalysisRepository
	publisher   analysis.Publisher
	cfg         Config
	now         func() time.Time
}

// Deps groups the collaborators of the orchestrator.
// A nil Cache means a process-local memory cache. Repo and Publisher may be nil: without Repo the persistence operations
// return analysis.ErrStoreDisabled, without Publisher no events are sent.
type Deps struct {
	Registry  *source.Registry
	Sentiment sentiment.UseCase
	Forecast  forecast.UseCase
	Trend     trend.UseCase
	Cache     repository.CacheRepository
	Repo      repository.AnalysisRepository
	Publisher analysis.Publisher
}

// New creates the analysis orchestrator.
func New(l log.Logger, deps Deps, cfg Config) analysis.UseCase {
	def := DefaultConfig()
	if cfg.SamplePosts <= 0 {
		cfg.SamplePosts = def.SamplePosts
	}
	if cfg.SalesDataPoints <= 0 {
		cfg.SalesDataPoints = def.SalesDataPoints
	}
	if cfg.ForecastPeriods <= 0 {
		cfg.ForecastPeriods = def.ForecastPeriods
	}
	if cfg.ChartDays <= 0 {
		cfg.ChartDays = def.ChartDays
	}
	if cfg.ListLimit <= 0 || cfg.ListLimit > analysis.MaxListLimit {
		cfg.ListLimit = def.ListLimit
	}
	cfg.DefaultSources = knownSources(cfg.DefaultSources)
	if len(cfg.DefaultSources) == 0 {
		cfg.DefaultSources = def.DefaultSources
	}

	if deps.Registry == nil {
		deps.Registry = source.NewRegistry()
	}
	if deps.Cache == nil {
		deps.Cache = memory.New(memory.DefaultTTL)
	}

	return &implUseCase{
		l:           l,
		registry:    deps.Registry,
		sentimentUC: deps.Sentiment,
		forecastUC:  deps.Forecast,
		trendUC:     deps.Trend,
		cache:       deps.Cache,
		repo:        deps.Repo,
		publisher:   deps.Publisher,
		cfg:         cfg,
		now:         time.Now,
	}
}
