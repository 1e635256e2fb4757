package rental_test

import (
	"context"
	"testing"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	"github.com/Bennnhere/LendIt-app/service/rental"
	"github.com/Bennnhere/LendIt-app/service/svcerr"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func setup(t *testing.T) (rental.Service, sessionrepo.Repo, *clock) {
	t.Helper()
	r := sessionrepo.NewMemory()
	require.NoError(t, r.Create(context.Background(), &model.Session{
		ID: "s",
		Items: []model.Item{
			{ID: 1, Name: "Engineering Drafter", Owner: "Senior Rahul", PricePerHour: 10, Status: model.ItemAvailable},
			{ID: 3, Name: "Scientific Calculator", Owner: "Siddharth", PricePerHour: 15, Status: model.ItemAvailable},
		},
	}))
	c := &clock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	return rental.New(r, c.Now), r, c
}

func TestRequest_MarksBusy(t *testing.T) {
	ctx := context.Background()
	svc, r, c := setup(t)

	ar, err := svc.Request(ctx, "s", 3)
	require.NoError(t, err)
	require.Equal(t, "Scientific Calculator", ar.ItemName)
	require.Equal(t, 15.0, ar.Rate)
	require.Equal(t, c.t, ar.StartTime)

	sess, err := r.Get(ctx, "s")
	require.NoError(t, err)
	require.NotNil(t, sess.ActiveRental)
	require.Equal(t, model.ItemBusy, sess.FindItem(3).Status)
	require.Equal(t, model.ItemAvailable, sess.FindItem(1).Status)
}

func TestRequest_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setup(t)

	_, err := svc.Request(ctx, "s", 99)
	require.Equal(t, svcerr.ErrNotFound, svcerr.Code(err))

	_, err = svc.Request(ctx, "s", 3)
	require.NoError(t, err)

	_, err = svc.Request(ctx, "s", 1)
	require.Equal(t, svcerr.ErrAlreadyRenting, svcerr.Code(err))

	_, err = svc.Request(ctx, "nope", 1)
	require.Equal(t, svcerr.ErrSessionNotFound, svcerr.Code(err))
}

func TestRequest_BusyItem(t *testing.T) {
	s := &model.Session{Items: []model.Item{{ID: 1, Status: model.ItemBusy}}}
	_, err := rental.Request(s, 1, time.Now())
	require.Equal(t, svcerr.ErrNotAvailable, svcerr.Code(err))
	require.Nil(t, s.ActiveRental)
}

func TestStatus_Scenarios(t *testing.T) {
	ctx := context.Background()
	svc, _, c := setup(t)

	m, err := svc.Status(ctx, "s")
	require.NoError(t, err)
	require.False(t, m.Active)

	_, err = svc.Request(ctx, "s", 3)
	require.NoError(t, err)

	c.t = c.t.Add(30 * time.Minute)
	m, err = svc.Status(ctx, "s")
	require.NoError(t, err)
	require.Equal(t, 15.0, m.Cost)
	require.Equal(t, int64(30), m.ElapsedMinutes)

	c.t = c.t.Add(60 * time.Minute)
	m, err = svc.Status(ctx, "s")
	require.NoError(t, err)
	require.Equal(t, 22.5, m.Cost)
	require.Equal(t, int64(90), m.ElapsedMinutes)
}
