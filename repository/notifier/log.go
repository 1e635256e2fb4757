package notifierrepo

import (
	"context"
	"log/slog"
)

type logRepo struct{ log *slog.Logger }

// NewLog only records the alert. It is the default when no delivery channel
// is configured.
func NewLog(log *slog.Logger) Repo { return &logRepo{log: log} }

func (r *logRepo) Name() string { return "log" }

func (r *logRepo) Send(ctx context.Context, a Alert) error {
	r.log.WarnContext(ctx, "emergency broadcast",
		"session_id", a.SessionID,
		"message", a.Message,
		"sent_at", a.SentAt,
	)
	return nil
}
