package rental

import (
	"math"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
)

// MinimumBilled is the flat-minimum window: anything shorter costs one full hour.
const MinimumBilled = time.Hour

// Cost prices a rental of the given hourly rate running from start to now.
// Under an hour the full rate is charged, past it the time is prorated.
func Cost(rate float64, start, now time.Time) float64 {
	secs := elapsedSeconds(start, now)
	if secs < MinimumBilled.Seconds() {
		return rate
	}
	return secs / MinimumBilled.Seconds() * rate
}

// ElapsedMinutes is floor(seconds/60).
func ElapsedMinutes(start, now time.Time) int64 {
	return int64(math.Floor(elapsedSeconds(start, now) / 60))
}

// Round2 rounds for display.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

func elapsedSeconds(start, now time.Time) float64 {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Meter is the Rental Status view.
type Meter struct {
	Active         bool       `json:"active"`
	ItemID         int64      `json:"item_id,omitempty"`
	ItemName       string     `json:"item_name,omitempty"`
	Owner          string     `json:"owner,omitempty"`
	Rate           float64    `json:"rate,omitempty"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	ElapsedMinutes int64      `json:"elapsed_minutes"`
	Cost           float64    `json:"cost"`
	AwaitingCash   bool       `json:"awaiting_cash"`
	QuotedCost     float64    `json:"quoted_cost,omitempty"`
}

// Read computes the meter for ar at now. A nil rental reads as inactive.
func Read(ar *model.ActiveRental, now time.Time) Meter {
	if ar == nil {
		return Meter{}
	}
	start := ar.StartTime
	return Meter{
		Active:         true,
		ItemID:         ar.ItemID,
		ItemName:       ar.ItemName,
		Owner:          ar.Owner,
		Rate:           ar.Rate,
		StartTime:      &start,
		ElapsedMinutes: ElapsedMinutes(ar.StartTime, now),
		Cost:           Round2(Cost(ar.Rate, ar.StartTime, now)),
		AwaitingCash:   ar.AwaitingCash,
		QuotedCost:     ar.QuotedCost,
	}
}
