package sessionrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
)

type memRepo struct {
	mu   sync.Mutex
	data map[string]*model.Session
	now  func() time.Time
}

func NewMemory() Repo { return NewMemoryWithClock(time.Now) }

func NewMemoryWithClock(now func() time.Time) Repo {
	return &memRepo{data: make(map[string]*model.Session), now: now}
}

func (r *memRepo) Create(ctx context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[s.ID]; ok {
		return fmt.Errorf("create session %s: %w", s.ID, ErrExists)
	}
	ts := r.now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = ts
	}
	s.UpdatedAt = ts
	r.data[s.ID] = clone(s)
	return nil
}

func (r *memRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(s), nil
}

func (r *memRepo) Update(ctx context.Context, id string, fn func(s *model.Session) error) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := clone(cur)
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = r.now().UTC()
	r.data[id] = next
	return clone(next), nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *memRepo) ReleaseExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.data {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.data, id)
			n++
		}
	}
	return n, nil
}
