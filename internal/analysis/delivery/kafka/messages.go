package kafka

import "time"

// AnalysisCompletedMessage - Kafka message for analysis.completed
type AnalysisCompletedMessage struct {
	EventType        string    `json:"event_type"`
	UserID           string    `json:"user_id"`
	AnalysisID       string    `json:"analysis_id"`
	Product          string    `json:"product"`
	OverallSentiment string    `json:"overall_sentiment"`
	PredictedTrend   string    `json:"predicted_trend"`
	Confidence       float64   `json:"confidence"`
	Degraded         bool      `json:"degraded"`
	CompletedAt      time.Time `json:"completed_at"`
}
