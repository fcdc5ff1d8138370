package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marsestates/brokerage-api/internal/config"
)

// Store is a thin JSON cache over redis. A Store with a nil client is
// valid and reports a miss on every read, so callers never branch on
// whether caching is configured.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// ErrMiss is returned when a key is absent or caching is disabled.
var ErrMiss = errors.New("cache: miss")

func New(cfg *config.Config) *Store {
	if cfg.Redis.Addr == "" {
		return &Store{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	return &Store{rdb: rdb, ttl: time.Duration(cfg.Redis.TTLSec) * time.Second}
}

// GetJSON unmarshals the cached value at key into target.
func (s *Store) GetJSON(ctx context.Context, key string, target interface{}) error {
	if s == nil || s.rdb == nil {
		return ErrMiss
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(raw, target)
}

// SetJSON stores value at key with the configured TTL.
func (s *Store) SetJSON(ctx context.Context, key string, value interface{}) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, s.ttl).Err()
}

// Del drops the given keys.
func (s *Store) Del(ctx context.Context, keys ...string) error {
	if s == nil || s.rdb == nil || len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}
