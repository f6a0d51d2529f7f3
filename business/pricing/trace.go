package pricing

import (
	"context"
	"hotelPricing/pkg/logger"

	"github.com/google/uuid"
)

type ctxKey string

const TraceIDKey ctxKey = "trace_id"

func TraceIDFromContext(ctx context.Context) string {
	if v := ctx.Value(TraceIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func ContextWithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TraceIDKey, id)
}

// ensureTraceID returns ctx unchanged if it already carries a trace id.
func ensureTraceID(ctx context.Context) (context.Context, string) {
	if tid := TraceIDFromContext(ctx); tid != "" {
		return ctx, tid
	}
	tid := uuid.NewString()
	return ContextWithTraceID(ctx, tid), tid
}

func withTrace(ctx context.Context, keyvals []any) []any {
	return append([]any{"trace_id", TraceIDFromContext(ctx)}, keyvals...)
}

func logDebug(ctx context.Context, event string, keyvals ...any) {
	logger.Debug(event, withTrace(ctx, keyvals)...)
}

func logInfo(ctx context.Context, event string, keyvals ...any) {
	logger.Info(event, withTrace(ctx, keyvals)...)
}

func logWarn(ctx context.Context, event string, keyvals ...any) {
	logger.Warn(event, withTrace(ctx, keyvals)...)
}

func logError(ctx context.Context, event string, keyvals ...any) {
	logger.Error(event, withTrace(ctx, keyvals)...)
}
