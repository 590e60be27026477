// Package logging defines the small structured-logging surface shared by the
// inspector client and the development server. Implementations wrap log/slog.
package logging

import "context"

// Logger is a context-aware structured logger. Variadic args are key/value
// pairs:
//
//	log.Info(ctx, "audit submitted", "asset_id", id, "urgency", urgency)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs routine progress messages.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
