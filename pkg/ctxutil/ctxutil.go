package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey     ctxKey = "run_id"
	operationKey ctxKey = "operation"
)

// WithRunID stores the run ID of the current command invocation in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithOperation stores the name of the engine operation being run.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromCtx extracts the operation name from the context.
// Returns an empty string if absent.
func OperationFromCtx(ctx context.Context) string {
	op, _ := ctx.Value(operationKey).(string)
	return op
}

// LogAttrs returns the context values as slog key/value pairs, ready for
// logger.With. Absent values are omitted.
func LogAttrs(ctx context.Context) []any {
	var attrs []any
	if id, ok := RunIDFromCtx(ctx); ok {
		attrs = append(attrs, "run_id", id.String())
	}
	if op := OperationFromCtx(ctx); op != "" {
		attrs = append(attrs, "operation", op)
	}
	return attrs
}
