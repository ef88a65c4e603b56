package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alerta-golpe/api-go/types"
	pkgerrors "github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
)

const domainCachePrefix = "domain:check:"

type DomainCache interface {
	Get(ctx context.Context, domain string) (*types.DomainCheckResult, bool, error)
	Set(ctx context.Context, domain string, result *types.DomainCheckResult, ttl time.Duration) error
	Delete(ctx context.Context, domain string) error
}

type RedisDomainCache struct {
	rdb *redis.Client
}

func NewRedisDomainCache(rdb *redis.Client) *RedisDomainCache {
	return &RedisDomainCache{rdb: rdb}
}

func (c *RedisDomainCache) Get(ctx context.Context, domain string) (*types.DomainCheckResult, bool, error) {
	raw, err := c.rdb.Get(ctx, domainCachePrefix+domain).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, pkgerrors.Wrap(err, "redis get")
	}

	var result types.DomainCheckResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false, pkgerrors.Wrap(err, "decode cached domain check")
	}
	return &result, true, nil
}

func (c *RedisDomainCache) Set(ctx context.Context, domain string, result *types.DomainCheckResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return pkgerrors.Wrap(err, "encode domain check")
	}
	return pkgerrors.Wrap(c.rdb.Set(ctx, domainCachePrefix+domain, raw, ttl).Err(), "redis set")
}

func (c *RedisDomainCache) Delete(ctx context.Context, domain string) error {
	return pkgerrors.Wrap(c.rdb.Del(ctx, domainCachePrefix+domain).Err(), "redis del")
}
