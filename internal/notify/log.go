package notify

import (
	"context"
	"log/slog"
)

// LogNotifier is the fallback channel when no provider is configured. It logs
// the skip and reports success so the pipeline behaves identically with and
// without credentials.
type LogNotifier struct{}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

var _ Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Notify(ctx context.Context, p Payload) error {
	slog.WarnContext(ctx, "notification skipped: no provider configured",
		"email", p.Email,
		"submitted_at", p.SubmittedAt,
	)
	return nil
}
