// model/rental.go
package model

import "time"

type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayWallet PaymentMethod = "wallet"
)

// ActiveRental is the single in-progress borrowing transaction of a session.
type ActiveRental struct {
	ItemID       int64     `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Rate         float64   `json:"rate"`
	StartTime    time.Time `json:"start_time"`
	Owner        string    `json:"owner"`
	AwaitingCash bool      `json:"awaiting_cash"`
	QuotedCost   float64   `json:"quoted_cost,omitempty"`
}

type Receipt struct {
	ID             string        `json:"id"`
	ItemID         int64         `json:"item_id"`
	ItemName       string        `json:"item_name"`
	Owner          string        `json:"owner"`
	Rate           float64       `json:"rate"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	ElapsedMinutes int64         `json:"elapsed_minutes"`
	Cost           float64       `json:"cost"`
	Method         PaymentMethod `json:"method"`
}

// FinishReq selects how the borrower pays. Cash is the default.
// swagger:model FinishReq
type FinishReq struct {
	Method PaymentMethod `json:"method" validate:"omitempty,oneof=cash wallet"`
}

// BroadcastReq carries an optional custom alert text.
// swagger:model BroadcastReq
type BroadcastReq struct {
	Message string `json:"message" validate:"max=280"`
}
