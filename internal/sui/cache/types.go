package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RedisClient is the subset of redis.Cmdable used by the cache.
	RedisClient interface {
		Get(ctx context.Context, key string) *redis.StringCmd
		Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	}
	// Source fetches a raw transaction response by id.
	Source interface {
		Transaction(ctx context.Context, id string) (*model.TransactionWithAuthSigners, error)
	}
	// Metrics records cache lookups.
	Metrics interface {
		ObserveLookup(result string)
	}
)
