package graphql

import (
	"context"
	"log/slog"
	"runtime/debug"
)

// panicLogger routes resolver panics recovered by graphql-go into slog.
type panicLogger struct {
	logger *slog.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.ErrorContext(ctx, "graphql resolver panic",
		slog.Any("panic", value),
		slog.String("stack", string(debug.Stack())),
	)
}
