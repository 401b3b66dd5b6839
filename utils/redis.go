package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

var redisClient *redis.Client

// SetRedis installs the shared client. A nil client disables the
// limiter and cache (callers must treat Redis as optional).
func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}

var ctx = context.Background()

func RedisCtx() context.Context {
	return ctx
}

// CacheGetJSON loads a cached value into dst. Returns false on miss,
// decode failure, or when Redis is not configured.
func CacheGetJSON(key string, dst interface{}) bool {
	if redisClient == nil {
		return false
	}
	val, err := redisClient.Get(ctx, key).Result()
	if err != nil || val == "" {
		return false
	}
	return json.Unmarshal([]byte(val), dst) == nil
}

// CacheSetJSON stores a value with a TTL, best-effort.
func CacheSetJSON(key string, v interface{}, ttl time.Duration) {
	if redisClient == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	redisClient.Set(ctx, key, b, ttl)
}

// CacheDel drops a key, best-effort.
func CacheDel(key string) {
	if redisClient == nil {
		return
	}
	redisClient.Del(ctx, key)
}
