package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trend"

var (
	AnalysisRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_requests_total",
		Help:      "Analyses run, by outcome (ok, degraded, synthetic, cached)",
	}, []string{"outcome"})
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Wall time of one analysis including fan-out",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 40, 60},
	})
	AnalysisCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_cache_total",
		Help:      "Report cache lookups, by result (hit, miss)",
	}, []string{"result"})
	SourceFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_fetch_total",
		Help:      "Adapter fetches, by source and outcome (live, fallback, failed)",
	}, []string{"source", "outcome"})
	LLMFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_fallback_total",
		Help:      "Times a component fell back to its deterministic path",
	}, []string{"component"})
	ForecastModels = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forecast_model_total",
		Help:      "Forecasts produced, by model tier",
	}, []string{"model"})
)

func init() {
	prometheus.MustRegister(AnalysisRequests, AnalysisDuration, AnalysisCache, SourceFetches, LLMFallbacks, ForecastModels)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAnalysis records one finished analysis.
func ObserveAnalysis(outcome string, start time.Time) {
	AnalysisRequests.WithLabelValues(outcome).Inc()
	AnalysisDuration.Observe(time.Since(start).Seconds())
}

func IncCache(result string) { AnalysisCache.WithLabelValues(result).Inc() }

func IncSourceFetch(source, outcome string) { SourceFetches.WithLabelValues(source, outcome).Inc() }

func IncLLMFallback(component string) { LLMFallbacks.WithLabelValues(component).Inc() }

func IncForecastModel(model string) { ForecastModels.WithLabelValues(model).Inc() }
