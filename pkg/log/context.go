package log

import "context"

// SetTraceIDToContext stores a request id that every log line written with ctx will carry.
func SetTraceIDToContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, traceID)
}

// GetTraceIDFromContext returns the request id stored in ctx, or "".
func GetTraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}
