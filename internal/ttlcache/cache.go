// Package ttlcache is an in-process key/value cache with per-entry expiry and
// single-flight production of missing keys.
package ttlcache

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/imtaco/showroom-live/internal/log"
)

// Producer computes the value for a missing or expired key.
type Producer[V any] func(ctx context.Context) (V, error)

// Cache is safe for concurrent use. A producer runs at most once at a time per key;
// callers arriving while it runs share its result or its error. Failed productions
// leave nothing behind.
type Cache[V any] struct {
	name   string
	store  store[V]
	group  singleflight.Group
	clock  clockwork.Clock
	attrs  metric.MeasurementOption
	logger *log.Logger
}

type Option func(*options)

type options struct {
	clock clockwork.Clock
}

// WithClock replaces the wall clock used for expiry.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// New creates a cache; maxEntries > 0 adds LRU eviction on top of TTL expiry.
func New[V any](name string, maxEntries int, logger *log.Logger, opts ...Option) (*Cache[V], error) {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return newWithClock[V](name, maxEntries, o.clock, logger)
}

func newWithClock[V any](name string, maxEntries int, clock clockwork.Clock, logger *log.Logger) (*Cache[V], error) {
	if logger == nil {
		panic("logger is required")
	}

	var s store[V]
	if maxEntries > 0 {
		ls, err := newLRUStore[V](maxEntries)
		if err != nil {
			return nil, fmt.Errorf("failed to create LRU store: %w", err)
		}
		s = ls
	} else {
		s = newMapStore[V]()
	}

	return &Cache[V]{
		name:   name,
		store:  s,
		clock:  clock,
		attrs:  metric.WithAttributes(attribute.String("cache", name)),
		logger: logger,
	}, nil
}

// Get returns the live value for key without producing.
func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.store.get(key)
	if !ok || e.expired(c.clock.Now()) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Fetch returns the live value for key, or runs producer and stores its result for ttl.
// A ttl <= 0 still deduplicates concurrent callers but stores nothing.
func (c *Cache[V]) Fetch(ctx context.Context, key string, producer Producer[V], ttl time.Duration) (V, error) {
	if v, ok := c.Get(key); ok {
		cacheHits.Add(ctx, 1, c.attrs)
		return v, nil
	}
	cacheMisses.Add(ctx, 1, c.attrs)

	res, err, shared := c.group.Do(key, func() (any, error) {
		// a flight that finished just before this one started may have stored it
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		// the flight outlives any single caller
		v, err := producer(context.WithoutCancel(ctx))
		if err != nil {
			producerFailures.Add(ctx, 1, c.attrs)
			return nil, err
		}
		if ttl > 0 {
			c.store.put(key, &entry[V]{
				value:     v,
				createdAt: c.clock.Now(),
				ttl:       ttl,
			})
		}
		return v, nil
	})
	if err != nil {
		c.logger.Debug("cache produce failed",
			log.String("cache", c.name),
			log.String("key", key),
			log.Bool("shared", shared),
			log.Error(err))
		var zero V
		return zero, err
	}

	v, _ := res.(V)
	return v, nil
}

// Invalidate drops key so the next Fetch produces again.
func (c *Cache[V]) Invalidate(key string) {
	c.store.remove(key)
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache[V]) Purge() int {
	return c.store.purge(c.clock.Now())
}

// RunJanitor purges expired entries every interval until ctx is done.
func (c *Cache[V]) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := c.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if n := c.Purge(); n > 0 {
				c.logger.Debug("cache purged",
					log.String("cache", c.name),
					log.Int("removed", n))
			}
		}
	}
}

// Len counts stored entries, expired ones included until purged or evicted.
func (c *Cache[V]) Len() int {
	return c.store.len()
}
