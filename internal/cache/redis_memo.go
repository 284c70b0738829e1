package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const memoKeyPrefix = "analytics-memo::"

// RedisMemo memoizes computed analytics results in redis, shared between
// service instances.
type RedisMemo struct {
	redisClient *redis.Client
}

func NewRedisMemo(redisClient *redis.Client) *RedisMemo {
	return &RedisMemo{
		redisClient: redisClient,
	}
}

func (m *RedisMemo) Get(ctx context.Context, key string) ([]byte, bool) {
	cmd := m.redisClient.Get(ctx, memoKeyPrefix+key)
	if err := cmd.Err(); err != nil {
		if err != redis.Nil {
			log.Errorf("redis memo get [%s]: %s", key, err)
		}
		return nil, false
	}
	val := cmd.Val()
	if val == "" {
		return nil, false
	}
	return []byte(val), true
}

func (m *RedisMemo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := m.redisClient.Set(ctx, memoKeyPrefix+key, value, ttl).Err(); err != nil {
		log.Errorf("redis memo set [%s]: %s", key, err)
	}
}

func (m *RedisMemo) Clear(ctx context.Context) {
	iter := m.redisClient.Scan(ctx, 0, memoKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := m.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			log.Errorf("redis memo clear [%s]: %s", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Errorf("redis memo clear scan: %s", err)
	}
}
