package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/memofiche-api/internal/platform/logger"
)

// TraceIDHeader is the response header carrying the request's trace ID.
const TraceIDHeader = "X-Trace-ID"

// SetTraceID adds a new trace ID to the context.
// The ID is stored where the logger's context handler finds it, so every
// log line written with this context carries trace_id.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.TraceID(ctx)
}
