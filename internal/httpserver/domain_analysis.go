package httpserver

import (
	"context"

	"trend-srv/config"
	analysisHTTP "trend-srv/internal/analysis/delivery/http"
	analysisProducer "trend-srv/internal/analysis/delivery/kafka/producer"
	analysisRepo "trend-srv/internal/analysis/repository"
	analysisMemory "trend-srv/internal/analysis/repository/memory"
	analysisPostgre "trend-srv/internal/analysis/repository/postgre"
	analysisRedis "trend-srv/internal/analysis/repository/redis"
	analysisUsecase "trend-srv/internal/analysis/usecase"
	forecastPostgre "trend-srv/internal/forecast/repository/postgre"
	forecastUsecase "trend-srv/internal/forecast/usecase"
	sentimentUsecase "trend-srv/internal/sentiment/usecase"
	"trend-srv/internal/source/builder"
	trendUsecase "trend-srv/internal/trend/usecase"
)

func (srv HTTPServer) setupAnalysisDomain(ctx context.Context) (analysisHTTP.Handler, error) {
	registry := builder.Build(srv.l, builder.FromConfig(srv.config))

	sentimentUC := sentimentUsecase.New(srv.l, srv.llm, sentimentUsecase.DefaultConfig())

	salesRepo := forecastPostgre.New(srv.postgresDB, srv.l)
	forecastUC := forecastUsecase.New(srv.l, salesRepo, forecastUsecase.Config{
		DefaultPeriods: srv.config.Analysis.ForecastPeriods,
		HistoryDays:    srv.config.Analysis.HistoryDays,
	})

	trendUC := trendUsecase.New(srv.l, srv.llm)

	var cache analysisRepo.CacheRepository
	if srv.config.Analysis.CacheBackend == config.CacheBackendRedis {
		cache = analysisRedis.New(srv.l, srv.redisClient, srv.config.Analysis.CacheTTL)
	} else {
		cache = analysisMemory.New(srv.config.Analysis.CacheTTL)
	}

	deps := analysisUsecase.Deps{
		Registry:  registry,
		Sentiment: sentimentUC,
		Forecast:  forecastUC,
		Trend:     trendUC,
		Cache:     cache,
		Repo:      analysisPostgre.New(srv.postgresDB, srv.l),
	}
	if srv.kafkaProducer != nil {
		deps.Publisher = analysisProducer.New(srv.l, srv.kafkaProducer)
	}

	cfg := analysisUsecase.DefaultConfig()
	cfg.ForecastPeriods = srv.config.Analysis.ForecastPeriods
	if len(srv.config.Analysis.DefaultSources) > 0 {
		cfg.DefaultSources = srv.config.Analysis.DefaultSources
	}
	analysisUC := analysisUsecase.New(srv.l, deps, cfg)

	srv.l.Infof(ctx, "Analysis domain initialized: sources=%v cache=%s llm=%t events=%t",
		registry.IDs(), srv.config.Analysis.CacheBackend, srv.llm != nil, deps.Publisher != nil)

	return analysisHTTP.New(srv.l, analysisUC), nil
}
