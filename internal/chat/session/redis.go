package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"insurance_leads_backend/platform/apperr"
)

const redisKeyPrefix = "chat:session:"

// Stripe count for the update locks. Memory stays fixed no matter how many
// session ids pass through the store.
const lockStripes = 64

// RedisStore is a Store backed by Redis, used when sessions must survive
// process restarts. Expiry is delegated to Redis key TTLs. Update
// serialization is per process: a session id hashes onto one of a fixed set
// of striped mutexes, which is sufficient when a session's traffic is
// pinned to one instance.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	locks  [lockStripes]sync.Mutex
}

// NewRedisStore connects to Redis using a redis:// URL.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Put creates or replaces a session.
func (s *RedisStore) Put(ctx context.Context, sess Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, payload, s.ttl).Err(); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "session registry is unavailable", err)
	}
	return nil
}

// Get returns the session stored under id.
func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, apperr.NotFound(msgSessionNotFound)
	}
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindUnavailable, "session registry is unavailable", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}

// Update applies fn read-modify-write under the id's lock stripe and
// refreshes the TTL on success.
func (s *RedisStore) Update(ctx context.Context, id string, fn func(*Session) error) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(&sess); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now()
	return s.Put(ctx, sess)
}

// Delete removes a session.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "session registry is unavailable", err)
	}
	return nil
}

func (s *RedisStore) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
