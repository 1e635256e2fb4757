package settlement

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	"github.com/Bennnhere/LendIt-app/service/rental"
	"github.com/Bennnhere/LendIt-app/service/svcerr"
	"github.com/Bennnhere/LendIt-app/util/metrics"
	"github.com/google/uuid"
)

type OutcomeStatus string

const (
	StatusSettled      OutcomeStatus = "settled"
	StatusAwaitingCash OutcomeStatus = "awaiting_cash"
)

type Outcome struct {
	Status    OutcomeStatus  `json:"status"`
	Message   string         `json:"message"`
	AmountDue float64        `json:"amount_due,omitempty"`
	Receipt   *model.Receipt `json:"receipt,omitempty"`
}

type Service interface {
	// Finish starts settlement. Wallet settles at once; cash only quotes the
	// amount and waits for ConfirmCash.
	Finish(ctx context.Context, sessionID string, method model.PaymentMethod) (*Outcome, error)

	// ConfirmCash is the lender confirming the cash handover.
	ConfirmCash(ctx context.Context, sessionID string) (*Outcome, error)

	History(ctx context.Context, sessionID string) ([]model.Receipt, error)
	Export(ctx context.Context, sessionID string) ([]byte, error)
}

type service struct {
	r        sessionrepo.Repo
	now      func() time.Time
	currency string
}

func New(r sessionrepo.Repo, now func() time.Time, currency string) Service {
	if now == nil {
		now = time.Now
	}
	return &service{r: r, now: now, currency: currency}
}

// Finish is the pure transition behind Service.Finish.
func Finish(s *model.Session, method model.PaymentMethod, now time.Time, currency string) (*Outcome, error) {
	ar := s.ActiveRental
	if ar == nil {
		return nil, svcerr.Make(svcerr.ErrNoActiveRental)
	}
	cost := rental.Round2(rental.Cost(ar.Rate, ar.StartTime, now))

	switch method {
	case model.PayWallet:
		rc := closeRental(s, cost, model.PayWallet, now)
		return &Outcome{Status: StatusSettled, Message: "Wallet Payment Successful!", Receipt: rc}, nil
	case model.PayCash, "":
		ar.AwaitingCash = true
		ar.QuotedCost = cost
		return &Outcome{
			Status:    StatusAwaitingCash,
			Message:   fmt.Sprintf("Hand over %s%v to %s.", currency, cost, ar.Owner),
			AmountDue: cost,
		}, nil
	default:
		return nil, svcerr.Makef(svcerr.ErrBadInput, "unknown payment method "+string(method))
	}
}

// ConfirmCash closes a rental whose cash handover was started by Finish. The
// amount charged is the one quoted then.
func ConfirmCash(s *model.Session, now time.Time) (*Outcome, error) {
	ar := s.ActiveRental
	if ar == nil {
		return nil, svcerr.Make(svcerr.ErrNoActiveRental)
	}
	if !ar.AwaitingCash {
		return nil, svcerr.Make(svcerr.ErrCashNotPending)
	}
	rc := closeRental(s, ar.QuotedCost, model.PayCash, now)
	return &Outcome{Status: StatusSettled, Message: "Transaction Complete!", Receipt: rc}, nil
}

// closeRental clears the ActiveRental, frees its item by id and records a receipt.
func closeRental(s *model.Session, cost float64, method model.PaymentMethod, now time.Time) *model.Receipt {
	ar := s.ActiveRental
	if it := s.FindItem(ar.ItemID); it != nil {
		it.Status = model.ItemAvailable
	}
	rc := model.Receipt{
		ID:             uuid.NewString(),
		ItemID:         ar.ItemID,
		ItemName:       ar.ItemName,
		Owner:          ar.Owner,
		Rate:           ar.Rate,
		StartTime:      ar.StartTime,
		EndTime:        now.UTC(),
		ElapsedMinutes: rental.ElapsedMinutes(ar.StartTime, now),
		Cost:           cost,
		Method:         method,
	}
	s.Receipts = append(s.Receipts, rc)
	s.ActiveRental = nil
	return &rc
}

func (s *service) Finish(ctx context.Context, sessionID string, method model.PaymentMethod) (*Outcome, error) {
	var out *Outcome
	_, err := s.r.Update(ctx, sessionID, func(sess *model.Session) error {
		o, err := Finish(sess, method, s.now(), s.currency)
		out = o
		return err
	})
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	if out.Receipt != nil {
		metrics.ObserveSettlement(string(out.Receipt.Method), out.Receipt.Cost)
	}
	return out, nil
}

func (s *service) ConfirmCash(ctx context.Context, sessionID string) (*Outcome, error) {
	var out *Outcome
	_, err := s.r.Update(ctx, sessionID, func(sess *model.Session) error {
		o, err := ConfirmCash(sess, s.now())
		out = o
		return err
	})
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	metrics.ObserveSettlement(string(out.Receipt.Method), out.Receipt.Cost)
	return out, nil
}

// History returns receipts newest first.
func (s *service) History(ctx context.Context, sessionID string) ([]model.Receipt, error) {
	sess, err := s.r.Get(ctx, sessionID)
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	out := slices.Clone(sess.Receipts)
	slices.Reverse(out)
	if out == nil {
		out = []model.Receipt{}
	}
	return out, nil
}
