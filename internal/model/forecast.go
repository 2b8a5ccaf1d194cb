package model

import "time"

// Forecast model tiers.
const (
	ForecastModelAdvanced     = "advanced"
	ForecastModelIntermediate = "intermediate"
	ForecastModelLinear       = "fallback_linear"
	ForecastModelMinimal      = "minimal_fallback"
)

const (
	ForecastTrendGrowing   = "growing"
	ForecastTrendDeclining = "declining"
	ForecastTrendStable    = "stable"
)

// DefaultForecastPeriods is the number of future days projected when none is given.
const DefaultForecastPeriods = 30

// SalesPoint is one observation of the sales history series.
type SalesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ForecastPoint is one projected day.
type ForecastPoint struct {
	Date           time.Time `json:"date"`
	PredictedValue float64   `json:"predicted_value"`
	LowerBound     *float64  `json:"lower_bound,omitempty"`
	UpperBound     *float64  `json:"upper_bound,omitempty"`
}

// ForecastResult is the output of the forecast strategy chain.
type ForecastResult struct {
	ModelUsed      string          `json:"model_used"`
	ModelDetail    string          `json:"model_detail,omitempty"`
	Success        bool            `json:"success"`
	Series         []ForecastPoint `json:"series"`
	Trend          string          `json:"trend"`
	Confidence     float64         `json:"confidence"`
	Periods        int             `json:"periods"`
	DataPointsUsed int             `json:"data_points_used"`
	FallbackReason string          `json:"fallback_reason,omitempty"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// Values returns the predicted values in order.
func (f ForecastResult) Values() []float64 {
	out := make([]float64, len(f.Series))
	for i, p := range f.Series {
		out[i] = p.PredictedValue
	}
	return out
}
