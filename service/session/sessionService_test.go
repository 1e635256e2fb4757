package sessionsvc

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	"github.com/Bennnhere/LendIt-app/service/svcerr"
	jwtutil "github.com/Bennnhere/LendIt-app/util/jwt"
	"github.com/stretchr/testify/require"
)

func newSvc(r sessionrepo.Repo) Service {
	return New(r, Config{
		Secret: "test-secret",
		TTL:    time.Hour,
		Catalog: []model.Item{
			{ID: 1, Name: "Ruler", Owner: "You", PricePerHour: 5, Status: model.ItemBusy},
		},
	})
}

func TestStart_SeedsCatalogAndIssuesToken(t *testing.T) {
	ctx := context.Background()
	r := sessionrepo.NewMemory()
	svc := newSvc(r)

	st, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, st.SessionID)

	id, err := jwtutil.ParseAuth(st.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, st.SessionID, id)

	sess, err := svc.Get(ctx, st.SessionID)
	require.NoError(t, err)
	require.Len(t, sess.Items, 1)
	require.Equal(t, model.ItemAvailable, sess.Items[0].Status)
	require.Nil(t, sess.ActiveRental)
}

func TestStart_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := sessionrepo.NewMemory()
	svc := newSvc(r)

	a, err := svc.Start(ctx)
	require.NoError(t, err)
	b, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NotEqual(t, a.SessionID, b.SessionID)

	_, err = r.Update(ctx, a.SessionID, func(s *model.Session) error {
		s.Items[0].Status = model.ItemBusy
		return nil
	})
	require.NoError(t, err)

	sb, err := svc.Get(ctx, b.SessionID)
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, sb.Items[0].Status)
}

func TestEnd(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(sessionrepo.NewMemory())

	st, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.End(ctx, st.SessionID))

	err = svc.End(ctx, st.SessionID)
	require.Equal(t, svcerr.ErrSessionNotFound, svcerr.Code(err))
	_, err = svc.Get(ctx, st.SessionID)
	require.Equal(t, svcerr.ErrSessionNotFound, svcerr.Code(err))
}

func TestCleaner_ReleaseExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	r := sessionrepo.NewMemoryWithClock(func() time.Time { return now })
	require.NoError(t, r.Create(ctx, &model.Session{ID: "idle"}))

	c := &cleaner{r: r, ttl: 30 * time.Minute, now: func() time.Time { return now.Add(time.Hour) }, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	n, err := c.ReleaseExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestCleaner_RunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewCleaner(sessionrepo.NewMemory(), time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan struct{})
	go func() {
		c.Run(ctx, time.Millisecond)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleaner did not stop")
	}
}
