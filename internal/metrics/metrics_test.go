package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposure(t *testing.T) {
	ObserveAnalysis("ok", time.Now().Add(-1500*time.Millisecond))
	IncCache("hit")
	IncSourceFetch("reddit", "fallback")
	IncLLMFallback("sentiment")
	IncForecastModel("fallback_linear")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"trend_analysis_requests_total",
		"trend_analysis_duration_seconds",
		"trend_analysis_cache_total",
		`trend_source_fetch_total{outcome="fallback",source="reddit"}`,
		"trend_llm_fallback_total",
		"trend_forecast_model_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
