package kafka

// EventTypeAnalysisCompleted tags every message on the topic.
const EventTypeAnalysisCompleted = "analysis.completed"

// Record header keys.
const (
	HeaderEventType = "event_type"
	HeaderTraceID   = "trace_id"
)
