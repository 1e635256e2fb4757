package broadcastsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	notifierrepo "github.com/Bennnhere/LendIt-app/repository/notifier"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	"github.com/Bennnhere/LendIt-app/service/svcerr"
	"github.com/Bennnhere/LendIt-app/util/metrics"
)

const (
	DefaultMessage = "Emergency Alert Sent: Someone needs stationery at the Lab!"
	Toast          = "Broadcasting your need to everyone in the hostel..."
)

// ErrNotDelivered wraps notifier failures. Other errors come from the session store.
var ErrNotDelivered = errors.New("broadcast not delivered")

type Result struct {
	Toast   string `json:"toast"`
	Message string `json:"message"`
}

type Service interface {
	Broadcast(ctx context.Context, sessionID, message string) (*Result, error)
}

type service struct {
	sessions sessionrepo.Repo
	n        notifierrepo.Repo
	now      func() time.Time
}

func New(sessions sessionrepo.Repo, n notifierrepo.Repo) Service {
	return &service{sessions: sessions, n: n, now: time.Now}
}

// Broadcast hands the alert to the notifier. Session state is never touched.
func (s *service) Broadcast(ctx context.Context, sessionID, message string) (*Result, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, svcerr.FromStore(err)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultMessage
	}

	err := s.n.Send(ctx, notifierrepo.Alert{
		SessionID: sessionID,
		Message:   message,
		SentAt:    s.now().UTC(),
	})
	if err != nil {
		metrics.IncBroadcast("failed")
		return nil, fmt.Errorf("%w via %s: %w", ErrNotDelivered, s.n.Name(), err)
	}
	metrics.IncBroadcast("sent")
	return &Result{Toast: Toast, Message: message}, nil
}
