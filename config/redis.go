package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient returns nil when no address is configured or the server does not answer,
// so domain checks run uncached.
func NewRedisClient(ctx context.Context, addr string, log *logrus.Logger) *redis.Client {
	if addr == "" {
		log.Info("REDIS_ADDR not set, domain check cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := redisotel.InstrumentTracing(rdb); err != nil {
		log.Warnf("failed to instrument redis: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warnf("redis not reachable at %s: %v, domain check cache disabled", addr, err)
		_ = rdb.Close()
		return nil
	}

	log.Infof("connected to redis at %s", addr)
	return rdb
}
