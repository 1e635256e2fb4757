package rental

import (
	"context"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	"github.com/Bennnhere/LendIt-app/service/svcerr"
	"github.com/Bennnhere/LendIt-app/util/metrics"
)

type Service interface {
	// Request starts renting itemID at the current time.
	Request(ctx context.Context, sessionID string, itemID int64) (*model.ActiveRental, error)

	// Status reads the live meter.
	Status(ctx context.Context, sessionID string) (*Meter, error)
}

type service struct {
	r   sessionrepo.Repo
	now func() time.Time
}

func New(r sessionrepo.Repo, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{r: r, now: now}
}

// Request is the pure transition: snapshot the item into the session's single
// ActiveRental and mark it Busy.
func Request(s *model.Session, itemID int64, now time.Time) (*model.ActiveRental, error) {
	if s.ActiveRental != nil {
		return nil, svcerr.Make(svcerr.ErrAlreadyRenting)
	}
	it := s.FindItem(itemID)
	if it == nil {
		return nil, svcerr.Make(svcerr.ErrNotFound)
	}
	if it.Status != model.ItemAvailable {
		return nil, svcerr.Make(svcerr.ErrNotAvailable)
	}

	ar := &model.ActiveRental{
		ItemID:    it.ID,
		ItemName:  it.Name,
		Rate:      it.PricePerHour,
		StartTime: now.UTC(),
		Owner:     it.Owner,
	}
	it.Status = model.ItemBusy
	s.ActiveRental = ar
	return ar, nil
}

func (s *service) Request(ctx context.Context, sessionID string, itemID int64) (*model.ActiveRental, error) {
	var out model.ActiveRental
	_, err := s.r.Update(ctx, sessionID, func(sess *model.Session) error {
		ar, err := Request(sess, itemID, s.now())
		if err != nil {
			return err
		}
		out = *ar
		return nil
	})
	if err != nil {
		err = svcerr.FromStore(err)
		result := string(svcerr.Code(err))
		if result == "" {
			result = "error"
		}
		metrics.IncRentalRequest(result)
		return nil, err
	}
	metrics.IncRentalRequest("ok")
	return &out, nil
}

func (s *service) Status(ctx context.Context, sessionID string) (*Meter, error) {
	sess, err := s.r.Get(ctx, sessionID)
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	m := Read(sess.ActiveRental, s.now())
	return &m, nil
}
