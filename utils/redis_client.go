package utils

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cppla/coauthors/config"
)

// NewRedis connects to the configured redis. It returns nil when the cache is disabled or the
// server does not answer, so callers fall back to uncached reads.
func NewRedis(cfg config.AppConfig) *redis.Client {
	if !cfg.CacheEnabled {
		return nil
	}
	rc := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		Sugar.Warnf("redis unavailable, caching disabled: %v", err)
		_ = rc.Close()
		return nil
	}
	return rc
}
