package model

import "time"

// ChartPoint is one day of the report's chart series.
type ChartPoint struct {
	Date           string  `json:"date"`
	SentimentScore float64 `json:"sentiment_score"`
	Value          float64 `json:"value"`
}

// RawData carries the evidence behind a report.
type RawData struct {
	SourcesAnalyzed int             `json:"sources_analyzed"`
	SamplePosts     []Post          `json:"sample_posts"`
	SalesForecast   ForecastResult  `json:"sales_forecast"`
	SourcesUsed     []string        `json:"sources_used"`
	SalesData       []SalesPoint    `json:"sales_data,omitempty"`
	SearchInterest  *SearchInterest `json:"google_trends,omitempty"`
	FailedSources   []string        `json:"failed_sources,omitempty"`
}

// AnalysisReport is the aggregate result of one analysis run.
// A report returned by the orchestrator may be shared through the cache and must not be mutated.
type AnalysisReport struct {
	Product         string          `json:"product"`
	Sentiment       SentimentResult `json:"sentiment"`
	TrendPrediction TrendPrediction `json:"trend_prediction"`
	TrendData       []ChartPoint    `json:"trend_data"`
	RawData         RawData         `json:"raw_data"`
	Timestamp       time.Time       `json:"timestamp"`
	Degraded        bool            `json:"degraded"`
}

// StoredAnalysis is a report persisted for a user.
type StoredAnalysis struct {
	UserID     string         `json:"user_id"`
	AnalysisID string         `json:"analysis_id"`
	Product    string         `json:"product"`
	Report     AnalysisReport `json:"report"`
	CreatedAt  time.Time      `json:"created_at"`
}
