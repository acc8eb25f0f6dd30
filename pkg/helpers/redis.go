package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client with short timeouts; Redis only backs
// sessions, rate limits and the card cache, so a slow node must not stall requests.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// RedisSetJSON stores value as JSON under key.
func RedisSetJSON(ctx context.Context, rdb redis.Cmdable, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// RedisGetJSON reports false without error when the key is absent.
// An entry that no longer decodes into T is dropped and reported as a miss.
func RedisGetJSON[T any](ctx context.Context, rdb redis.Cmdable, key string, dest *T) (bool, error) {
	raw, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		_ = rdb.Del(ctx, key).Err()
		return false, nil
	}
	*dest = v
	return true, nil
}

func RedisDel(ctx context.Context, rdb redis.Cmdable, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
