// Package cache provides a redis read-through cache in front of a transaction source.
// Executed transactions never change, so entries only expire by TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

const (
	keyPrefix  = "suiexplorer:tx:"
	defaultTTL = 24 * time.Hour
)

// Config configures the redis connection.
type Config struct {
	Addr string
	TTL  time.Duration
}

// TransactionCache serves transactions from redis and falls back to the base source.
type TransactionCache struct {
	base    Source
	client  RedisClient
	ttl     time.Duration
	metrics Metrics
	logger  *zap.Logger
}

// New wraps base with a cache stored in client.
func New(base Source, client RedisClient, ttl time.Duration, metrics Metrics, logger *zap.Logger) (*TransactionCache, error) {
	if base == nil {
		return nil, errors.New("base transaction source is required")
	}
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if metrics == nil {
		return nil, errors.New("transaction cache metrics is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TransactionCache{base: base, client: client, ttl: ttl, metrics: metrics, logger: logger}, nil
}

// Dial connects to redis at cfg.Addr and verifies the connection.
func Dial(ctx context.Context, cfg Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Transaction returns the cached response for id or fetches and stores it.
func (c *TransactionCache) Transaction(ctx context.Context, id string) (*model.TransactionWithAuthSigners, error) {
	key := keyPrefix + id
	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var res model.TransactionWithAuthSigners
		if jsonErr := json.Unmarshal(cached, &res); jsonErr == nil {
			c.metrics.ObserveLookup("hit")
			return &res, nil
		}
		c.logger.Warn("dropping undecodable cache entry", zap.String("key", key))
		c.metrics.ObserveLookup("error")
	case errors.Is(err, redis.Nil):
		c.metrics.ObserveLookup("miss")
	default:
		c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		c.metrics.ObserveLookup("error")
	}

	res, err := c.base.Transaction(ctx, id)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(res)
	if err != nil {
		return res, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
	return res, nil
}
