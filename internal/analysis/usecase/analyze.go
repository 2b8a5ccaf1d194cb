package usecase

import (
	"context"
	"strings"
	"time"

	"trend-srv/internal/analysis"
	"trend-srv/internal/metrics"
	"trend-srv/internal/model"
)

const (
	outcomeOK        = "ok"
	outcomeDegraded  = "degraded"
	outcomeSynthetic = "synthetic"
	outcomeCached    = "cached"
)

// Analyze runs the full pipeline for product over sources.
func (uc *implUseCase) Analyze(ctx context.Context, product string, sources []string) (report *model.AnalysisReport) {
	start := time.Now()
	product = strings.TrimSpace(product)
	ids := uc.normalizeSources(sources)
	key := cacheKey(product, ids)

	// Step 1: Serve from cache
	if cached, ok := uc.cache.Get(ctx, key); ok {
		metrics.IncCache("hit")
		metrics.ObserveAnalysis(outcomeCached, start)
		uc.l.Debugf(ctx, "analysis.usecase.Analyze: cache hit for %s", key)
		return cached
	}
	metrics.IncCache("miss")

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "analysis.usecase.Analyze: pipeline panicked for %s: %v", product, r)
			report = uc.syntheticReport(product, ids)
			metrics.ObserveAnalysis(outcomeSynthetic, start)
		}
	}()

	// Step 2: Build the report
	report, err := uc.build(ctx, product, ids)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: pipeline aborted for %s: %v", product, err)
		metrics.ObserveAnalysis(outcomeSynthetic, start)
		return uc.syntheticReport(product, ids)
	}

	// Step 3: Cache the finished report
	uc.cache.Set(ctx, key, report)

	outcome := outcomeOK
	if report.Degraded {
		outcome = outcomeDegraded
	}
	metrics.ObserveAnalysis(outcome, start)
	uc.l.Infof(ctx, "analysis.usecase.Analyze: %s analyzed from %d posts in %s", product, report.RawData.SourcesAnalyzed, time.Since(start))

	return report
}

// build runs fan-out, estimation, forecasting and prediction. It only fails
// when ctx is done.
func (uc *implUseCase) build(ctx context.Context, product string, ids []string) (*model.AnalysisReport, error) {
	// Step 1: Fan out to every source
	g := uc.merge(ctx, product, uc.fetchAll(ctx, product, ids))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 2: Sentiment over the combined posts
	sent := uc.sentimentUC.Estimate(ctx, g.posts, product)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: Sales forecast
	history := uc.forecastUC.LoadSeries(ctx, product)
	fc := uc.forecastUC.Forecast(ctx, history, uc.cfg.ForecastPeriods)

	// Step 4: Trend prediction
	signal := model.HistoricalSignal{
		Mentions:        len(g.posts),
		TotalEngagement: totalEngagement(g.posts),
		TimePeriod:      analysis.DefaultTimeRange,
		SearchInterest:  g.interest,
	}
	prediction := uc.trendUC.Predict(ctx, sent, fc, signal)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 5: Assemble
	return &model.AnalysisReport{
		Product:         product,
		Sentiment:       sent,
		TrendPrediction: prediction,
		TrendData:       uc.chart(product, sent, fc, g.interest),
		RawData: model.RawData{
			SourcesAnalyzed: len(g.posts),
			SamplePosts:     head(g.posts, uc.cfg.SamplePosts),
			SalesForecast:   fc,
			SourcesUsed:     ids,
			SalesData:       tail(history, uc.cfg.SalesDataPoints),
			SearchInterest:  g.interest,
			FailedSources:   g.failed,
		},
		Timestamp: uc.now().UTC(),
		Degraded:  len(g.failed) > 0,
	}, nil
}

func totalEngagement(posts []model.Post) float64 {
	var sum float64
	for _, p := range posts {
		sum += p.EngagementScore
	}
	return sum
}

func head(posts []model.Post, n int) []model.Post {
	if len(posts) < n {
		n = len(posts)
	}
	out := make([]model.Post, n)
	copy(out, posts[:n])
	return out
}

func tail(points []model.SalesPoint, n int) []model.SalesPoint {
	if len(points) > n {
		points = points[len(points)-n:]
	}
	out := make([]model.SalesPoint, len(points))
	copy(out, points)
	return out
}
