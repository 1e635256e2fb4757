// repository/session/repo.go
package sessionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExists   = errors.New("session already exists")
)

// Repo stores whole sessions. Update is atomic per session: fn sees a private
// copy and its changes are committed only when it returns nil.
type Repo interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, id string, fn func(s *model.Session) error) (*model.Session, error)
	Delete(ctx context.Context, id string) error

	// ReleaseExpired drops sessions idle since before cutoff.
	ReleaseExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

func clone(s *model.Session) *model.Session {
	out := *s
	out.Items = append([]model.Item(nil), s.Items...)
	out.Receipts = append([]model.Receipt(nil), s.Receipts...)
	if s.ActiveRental != nil {
		ar := *s.ActiveRental
		out.ActiveRental = &ar
	}
	return &out
}
