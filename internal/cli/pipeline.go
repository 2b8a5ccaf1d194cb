package cli

import (
	"context"

	"trend-srv/config"
	"trend-srv/internal/analysis"
	analysisMemory "trend-srv/internal/analysis/repository/memory"
	analysisUsecase "trend-srv/internal/analysis/usecase"
	forecastUsecase "trend-srv/internal/forecast/usecase"
	sentimentUsecase "trend-srv/internal/sentiment/usecase"
	"trend-srv/internal/source/builder"
	trendUsecase "trend-srv/internal/trend/usecase"
	"trend-srv/pkg/log"
	"trend-srv/pkg/openrouter"
)

// NewPipeline builds an in-process analyzer from configuration. Nothing is persisted:
// the cache lives in memory and the forecast engine synthesizes its history.
func NewPipeline(cfg *config.Config) AnalyzerFactory {
	return func(ctx context.Context, debug bool) (analysis.Analyzer, error) {
		level := cfg.Logger.Level
		if debug {
			level = "debug"
		} else if level == "" || level == "debug" {
			level = "warn"
		}
		l := log.Init(log.ZapConfig{
			Level:        level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})

		llm, err := openrouter.New(ctx, openrouter.Config{
			APIKey:        cfg.OpenRouter.APIKey,
			BaseURL:       cfg.OpenRouter.BaseURL,
			PrimaryModel:  cfg.OpenRouter.PrimaryModel,
			FallbackModel: cfg.OpenRouter.FallbackModel,
			Temperature:   float32(cfg.OpenRouter.Temperature),
			MaxTokens:     cfg.OpenRouter.MaxTokens,
			Timeout:       cfg.OpenRouter.Timeout,
			Referer:       cfg.OpenRouter.Referer,
			Title:         cfg.OpenRouter.Title,
		})
		if err != nil {
			l.Warnf(ctx, "cli.NewPipeline: LLM disabled: %v", err)
			llm = nil
		}

		ucCfg := analysisUsecase.DefaultConfig()
		ucCfg.ForecastPeriods = cfg.Analysis.ForecastPeriods
		if len(cfg.Analysis.DefaultSources) > 0 {
			ucCfg.DefaultSources = cfg.Analysis.DefaultSources
		}

		return analysisUsecase.New(l, analysisUsecase.Deps{
			Registry:  builder.Build(l, builder.FromConfig(cfg)),
			Sentiment: sentimentUsecase.New(l, llm, sentimentUsecase.DefaultConfig()),
			Forecast: forecastUsecase.New(l, nil, forecastUsecase.Config{
				DefaultPeriods: cfg.Analysis.ForecastPeriods,
				HistoryDays:    cfg.Analysis.HistoryDays,
			}),
			Trend: trendUsecase.New(l, llm),
			Cache: analysisMemory.New(cfg.Analysis.CacheTTL),
		}, ucCfg), nil
	}
}
