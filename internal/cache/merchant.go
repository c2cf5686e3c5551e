package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"order-policy-service/internal/domain"
	"order-policy-service/internal/logx"
)

const keyPrefix = "merchant:"

// MerchantStore is the persistent merchant storage behind the cache.
type MerchantStore interface {
	Get(ctx context.Context, id int64) (*domain.Merchant, error)
	Create(ctx context.Context, m *domain.Merchant) (int64, error)
	UpdateSchedule(ctx context.Context, id int64, raw string) (bool, error)
	UpdateFeeConfig(ctx context.Context, id int64, raw string) (bool, error)
}

// MerchantCache is a cache-aside decorator over MerchantStore. Redis
// failures are logged and the store is used directly.
type MerchantCache struct {
	next   MerchantStore
	client redis.Cmdable
	ttl    time.Duration
	logger logx.Logger
}

// NewMerchantCache wraps next with a redis cache.
func NewMerchantCache(next MerchantStore, client redis.Cmdable, ttl time.Duration, logger logx.Logger) *MerchantCache {
	if logger == nil {
		logger = logx.Nop()
	}
	return &MerchantCache{next: next, client: client, ttl: ttl, logger: logger}
}

// Get returns the merchant from redis or loads and caches it.
func (c *MerchantCache) Get(ctx context.Context, id int64) (*domain.Merchant, error) {
	key := merchantKey(id)
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var m domain.Merchant
		if err := json.Unmarshal(data, &m); err == nil {
			return &m, nil
		}
		c.logger.Warn("merchant cache entry corrupt", logx.Int64("merchant_id", id))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("merchant cache get failed", logx.Int64("merchant_id", id), logx.Err(err))
	}

	m, err := c.next.Get(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	c.store(ctx, m)
	return m, nil
}

// Create delegates to the store.
func (c *MerchantCache) Create(ctx context.Context, m *domain.Merchant) (int64, error) {
	return c.next.Create(ctx, m)
}

// UpdateSchedule updates the store and drops the cached entry.
func (c *MerchantCache) UpdateSchedule(ctx context.Context, id int64, raw string) (bool, error) {
	ok, err := c.next.UpdateSchedule(ctx, id, raw)
	if err == nil {
		c.Invalidate(ctx, id)
	}
	return ok, err
}

// UpdateFeeConfig updates the store and drops the cached entry.
func (c *MerchantCache) UpdateFeeConfig(ctx context.Context, id int64, raw string) (bool, error) {
	ok, err := c.next.UpdateFeeConfig(ctx, id, raw)
	if err == nil {
		c.Invalidate(ctx, id)
	}
	return ok, err
}

// Invalidate removes the cached merchant.
func (c *MerchantCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, merchantKey(id)).Err(); err != nil {
		c.logger.Warn("merchant cache invalidate failed", logx.Int64("merchant_id", id), logx.Err(err))
	}
}

func (c *MerchantCache) store(ctx context.Context, m *domain.Merchant) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, merchantKey(m.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("merchant cache set failed", logx.Int64("merchant_id", m.ID), logx.Err(err))
	}
}

func merchantKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// NewClient connects to redis and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
