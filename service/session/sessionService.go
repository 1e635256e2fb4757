package sessionsvc

import (
	"context"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	"github.com/Bennnhere/LendIt-app/service/svcerr"
	jwtutil "github.com/Bennnhere/LendIt-app/util/jwt"
	"github.com/Bennnhere/LendIt-app/util/metrics"
	"github.com/google/uuid"
)

type Started struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service interface {
	// Start creates a session seeded with the catalog and returns its token.
	Start(ctx context.Context) (*Started, error)
	// End destroys the session.
	End(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.Session, error)
}

type Config struct {
	Secret  string
	TTL     time.Duration
	Catalog []model.Item
}

type service struct {
	r   sessionrepo.Repo
	cfg Config
}

func New(r sessionrepo.Repo, cfg Config) Service {
	return &service{r: r, cfg: cfg}
}

func (s *service) Start(ctx context.Context) (*Started, error) {
	sess := &model.Session{
		ID:       uuid.NewString(),
		Items:    append([]model.Item(nil), s.cfg.Catalog...),
		Receipts: []model.Receipt{},
	}
	for i := range sess.Items {
		sess.Items[i].Status = model.ItemAvailable
	}
	if err := s.r.Create(ctx, sess); err != nil {
		return nil, err
	}

	tok, exp, err := jwtutil.Issue(s.cfg.Secret, sess.ID, s.cfg.TTL)
	if err != nil {
		_ = s.r.Delete(ctx, sess.ID)
		return nil, err
	}
	metrics.IncSessionStarted()
	return &Started{SessionID: sess.ID, Token: tok, ExpiresAt: exp}, nil
}

func (s *service) End(ctx context.Context, id string) error {
	return svcerr.FromStore(s.r.Delete(ctx, id))
}

func (s *service) Get(ctx context.Context, id string) (*model.Session, error) {
	sess, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, svcerr.FromStore(err)
	}
	return sess, nil
}
