package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// TraceIDField is the structured field carrying the request id.
	TraceIDField = "trace_id"
)
