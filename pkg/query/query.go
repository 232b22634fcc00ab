// Package query memoizes keyed results and deduplicates concurrent fetches.
package query

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Fetcher produces the value for a key.
type Fetcher[V any] func(ctx context.Context) (V, error)

// Cache holds successful results for a limited time. The last error of a key
// is kept separately so that Peek can report it instead of refetching.
type Cache[V any] struct {
	entries *expirable.LRU[string, V]
	errs    *expirable.LRU[string, error]
	group   singleflight.Group

	mu       sync.Mutex
	inflight map[string]int
}

type options struct {
	errorTTL time.Duration
}

// Option configures a Cache.
type Option func(*options)

// WithErrorTTL sets how long a failed fetch is remembered. Defaults to the entry ttl.
func WithErrorTTL(d time.Duration) Option {
	return func(o *options) { o.errorTTL = d }
}

// New returns a cache holding up to size entries for ttl each.
func New[V any](size int, ttl time.Duration, opts ...Option) *Cache[V] {
	if size <= 0 {
		size = 128
	}
	o := options{errorTTL: ttl}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		entries:  expirable.NewLRU[string, V](size, nil, ttl),
		errs:     expirable.NewLRU[string, error](size, nil, o.errorTTL),
		inflight: make(map[string]int),
	}
}

// Get returns the cached value for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.entries.Get(key)
}

// Fetch returns the cached value for key or calls fn once for all concurrent callers.
// It always retries keys whose last fetch failed.
func (c *Cache[V]) Fetch(ctx context.Context, key string, fn Fetcher[V]) (V, bool, error) {
	if v, ok := c.entries.Get(key); ok {
		return v, true, nil
	}
	ch := c.group.DoChan(key, func() (any, error) {
		c.setLoading(key, 1)
		defer c.setLoading(key, -1)
		v, err := fn(context.WithoutCancel(ctx))
		if err != nil {
			c.errs.Add(key, err)
			return v, err
		}
		c.errs.Remove(key)
		c.entries.Add(key, v)
		return v, nil
	})
	select {
	case <-ctx.Done():
		var zero V
		return zero, false, ctx.Err()
	case res := <-ch:
		v, _ := res.Val.(V)
		return v, false, res.Err
	}
}

// Peek never blocks. It returns the cached value if there is one, or the
// error of the last failed fetch while that is remembered. Otherwise it
// reports a miss and starts fn in the background unless a fetch for key is
// already running.
func (c *Cache[V]) Peek(ctx context.Context, key string, fn Fetcher[V]) (V, bool, error) {
	var zero V
	if v, ok := c.entries.Get(key); ok {
		return v, true, nil
	}
	if err, ok := c.errs.Get(key); ok {
		return zero, false, err
	}

	c.mu.Lock()
	running := c.inflight[key] > 0
	if !running {
		c.inflight[key]++
	}
	c.mu.Unlock()
	if !running {
		go func() {
			defer c.setLoading(key, -1)
			_, _, _ = c.Fetch(context.WithoutCancel(ctx), key, fn)
		}()
	}
	return zero, false, nil
}

// Loading reports whether a fetch for key is in flight.
func (c *Cache[V]) Loading(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight[key] > 0
}

// Purge drops every cached entry.
func (c *Cache[V]) Purge() {
	c.entries.Purge()
	c.errs.Purge()
}

func (c *Cache[V]) setLoading(key string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := c.inflight[key] + delta; n > 0 {
		c.inflight[key] = n
		return
	}
	delete(c.inflight, key)
}
