package listingsvc

import (
	"context"
	"iter"
	"strings"

	"github.com/Bennnhere/LendIt-app/model"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	"github.com/Bennnhere/LendIt-app/service/svcerr"
	"github.com/Bennnhere/LendIt-app/util/metrics"
)

const (
	DefaultOwner = "You"
	MinPrice     = model.MinPricePerHour
	MaxPrice     = model.MaxPricePerHour
)

type Service interface {
	ListItem(ctx context.Context, sessionID, name, owner string, price float64) (*model.Item, error)
	BrowseAvailable(ctx context.Context, sessionID string) (iter.Seq[model.Item], error)
	List(ctx context.Context, sessionID string) ([]model.Item, error)
}

type service struct{ r sessionrepo.Repo }

func New(r sessionrepo.Repo) Service { return &service{r: r} }

// ListItem appends a new Available item with id max+1.
func ListItem(s *model.Session, name, owner string, price float64) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, svcerr.Makef(svcerr.ErrBadInput, "name required")
	}
	if !model.ValidPrice(price) {
		return model.Item{}, svcerr.Makef(svcerr.ErrBadInput, "price must be between 1 and 100000")
	}
	owner = strings.TrimSpace(owner)
	if owner == "" {
		owner = DefaultOwner
	}

	it := model.Item{
		ID:           s.NextItemID(),
		Name:         name,
		Owner:        owner,
		PricePerHour: price,
		Status:       model.ItemAvailable,
	}
	s.Items = append(s.Items, it)
	return it, nil
}

// Available yields the Available items in list order. Ranging again re-filters
// the same slice.
func Available(items []model.Item) iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for _, it := range items {
			if it.Status != model.ItemAvailable {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

func (s *service) ListItem(ctx context.Context, sessionID, name, owner string, price float64) (*model.Item, error) {
	var created model.Item
	_, err := s.r.Update(ctx, sessionID, func(sess *model.Session) error {
		it, err := ListItem(sess, name, owner, price)
		created = it
		return err
	})
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	metrics.IncItemListed()
	return &created, nil
}

func (s *service) BrowseAvailable(ctx context.Context, sessionID string) (iter.Seq[model.Item], error) {
	sess, err := s.r.Get(ctx, sessionID)
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	return Available(sess.Items), nil
}

func (s *service) List(ctx context.Context, sessionID string) ([]model.Item, error) {
	sess, err := s.r.Get(ctx, sessionID)
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	return sess.Items, nil
}
