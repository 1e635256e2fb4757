package rental

import (
	"testing"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func at(secs int) time.Time { return t0.Add(time.Duration(secs) * time.Second) }

func TestCost(t *testing.T) {
	cases := []struct {
		name string
		rate float64
		secs int
		want float64
	}{
		{"just started", 15, 0, 15},
		{"thirty minutes is flat minimum", 15, 1800, 15},
		{"one second short of an hour", 10, 3599, 10},
		{"exactly one hour", 10, 3600, 10},
		{"ninety minutes prorates", 15, 5400, 22.5},
		{"two hours", 10, 7200, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, Cost(tc.rate, t0, at(tc.secs)), 1e-9)
		})
	}
}

func TestCost_FlatUnderAnHour(t *testing.T) {
	for secs := 0; secs < 3600; secs += 97 {
		require.Equal(t, 7.0, Cost(7, t0, at(secs)))
	}
}

func TestCost_ClockSkew(t *testing.T) {
	require.Equal(t, 12.0, Cost(12, t0, t0.Add(-time.Minute)))
	require.Equal(t, int64(0), ElapsedMinutes(t0, t0.Add(-time.Minute)))
}

func TestElapsedMinutes(t *testing.T) {
	require.Equal(t, int64(0), ElapsedMinutes(t0, at(59)))
	require.Equal(t, int64(1), ElapsedMinutes(t0, at(60)))
	require.Equal(t, int64(90), ElapsedMinutes(t0, at(5459)))
}

func TestRound2(t *testing.T) {
	require.Equal(t, 12.35, Round2(12.345678))
	require.Equal(t, 22.5, Round2(22.5))
}

func TestRead(t *testing.T) {
	require.False(t, Read(nil, t0).Active)

	ar := &model.ActiveRental{ItemID: 3, ItemName: "Scientific Calculator", Rate: 15, StartTime: t0, Owner: "Siddharth"}
	m := Read(ar, at(4000))
	require.True(t, m.Active)
	require.Equal(t, int64(66), m.ElapsedMinutes)
	require.Equal(t, 16.67, m.Cost)
	require.Equal(t, "Siddharth", m.Owner)
}
