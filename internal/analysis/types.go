package analysis

import (
	"time"

	"trend-srv/internal/model"
)

const (
	DefaultTimeRange = "7d"
	DefaultMaxPosts  = 100
	MaxListLimit     = 1000
)

type GenerateInput struct {
	Product   string
	Sources   []string
	TimeRange string
	MaxPosts  int
}

type GenerateOutput struct {
	AnalysisID string
	Report     *model.AnalysisReport
}

type GetInput struct {
	AnalysisID string
}

type DeleteInput struct {
	AnalysisID string
}

type ListInput struct {
	Limit int
}

// Summary is a stored analysis with raw_data reduced to the sources used.
type Summary struct {
	AnalysisID string
	Product    string
	Report     model.AnalysisReport
	CreatedAt  time.Time
}

type CompareInput struct {
	Products []string
}

type CompareOutput struct {
	// Analyses maps each product that has a stored analysis to its latest one.
	Analyses map[string]model.StoredAnalysis
}

// CompletedEvent is published after a report has been stored.
type CompletedEvent struct {
	UserID           string
	AnalysisID       string
	Product          string
	OverallSentiment string
	PredictedTrend   string
	Confidence       float64
	Degraded         bool
	CompletedAt      time.Time
}
