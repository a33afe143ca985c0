package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrDraftNotFound = errors.New("draft not found")

const (
	draftKeyPrefix = "order:draft:"
	DefaultTTL     = 24 * time.Hour
)

// RedisStore persists drafts as JSON blobs with a TTL. Expiry simply
// discards the draft; nothing durable references it.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

// Save writes the draft and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, d *Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(d.ID), b, s.ttl).Err()
}

// Get loads a draft by id. A missing or expired draft is ErrDraftNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*Draft, error) {
	b, err := s.rdb.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}

	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("corrupt draft %s: %w", id, err)
	}
	return &d, nil
}

// Delete removes a draft. Deleting a missing draft is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, draftKey(id)).Err()
}
