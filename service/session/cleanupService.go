package sessionsvc

import (
	"context"
	"log/slog"
	"time"

	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
)

type Cleaner interface {
	ReleaseExpired(ctx context.Context) (int64, error)
	// Run sweeps every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}

type cleaner struct {
	r   sessionrepo.Repo
	ttl time.Duration
	now func() time.Time
	log *slog.Logger
}

func NewCleaner(r sessionrepo.Repo, ttl time.Duration, log *slog.Logger) Cleaner {
	return &cleaner{r: r, ttl: ttl, now: time.Now, log: log}
}

func (c *cleaner) ReleaseExpired(ctx context.Context) (int64, error) {
	return c.r.ReleaseExpired(ctx, c.now().UTC().Add(-c.ttl))
}

func (c *cleaner) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := c.ReleaseExpired(ctx)
			if err != nil {
				c.log.Error("session sweep failed", "err", err)
				continue
			}
			if n > 0 {
				c.log.Info("session sweep", "released", n)
			}
		}
	}
}
