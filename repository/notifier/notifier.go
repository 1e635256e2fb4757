package notifierrepo

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Alert is one emergency broadcast.
type Alert struct {
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

type Repo interface {
	Name() string
	Send(ctx context.Context, a Alert) error
}

type multi []Repo

// NewMulti fans an alert out to every backend. All backends are tried; the
// returned error joins whatever failed.
func NewMulti(rs ...Repo) Repo { return multi(rs) }

func (m multi) Name() string { return "multi" }

func (m multi) Send(ctx context.Context, a Alert) error {
	var errs []error
	for _, r := range m {
		if err := r.Send(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))
		}
	}
	return errors.Join(errs...)
}
