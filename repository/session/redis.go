package sessionrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Bennnhere/LendIt-app/model"
	"github.com/redis/go-redis/v9"
)

const maxTxRetries = 5

var ErrConflict = errors.New("session update conflict")

// redisRepo keeps each session as one JSON value under session:<id>. Idle
// sessions expire through the key TTL, which every write refreshes.
type redisRepo struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewRedis(client *redis.Client, ttl time.Duration) Repo {
	return &redisRepo{client: client, ttl: ttl, now: time.Now}
}

func key(id string) string { return fmt.Sprintf("session:%s", id) }

func (r *redisRepo) Create(ctx context.Context, s *model.Session) error {
	ts := r.now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = ts
	}
	s.UpdatedAt = ts
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, key(s.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis create session: %w", err)
	}
	if !ok {
		return fmt.Errorf("create session %s: %w", s.ID, ErrExists)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (r *redisRepo) Update(ctx context.Context, id string, fn func(s *model.Session) error) (*model.Session, error) {
	k := key(id)
	var out *model.Session

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return err
		}
		var s model.Session
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode session %s: %w", id, err)
		}
		if err := fn(&s); err != nil {
			return err
		}
		s.UpdatedAt = r.now().UTC()
		next, err := json.Marshal(&s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, k, next, r.ttl)
			return nil
		})
		if err == nil {
			out = &s
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, ErrConflict
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReleaseExpired is a no-op: Redis expires idle sessions on its own.
func (r *redisRepo) ReleaseExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

// NewRedisClient builds the client from config values.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Ping checks the connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
