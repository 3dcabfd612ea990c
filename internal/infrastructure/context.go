package infrastructure

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const runIDContextKey contextKey = "run_id"

// WithRunID returns a context carrying a fresh run ID. Every log record
// emitted with this context is stamped with the ID, so one invocation's
// output can be grepped out of a shared log file.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDContextKey, uuid.NewString())
}

// RunIDFromContext extracts the run ID, or "" when none is set.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDContextKey).(string); ok {
		return id
	}
	return ""
}
