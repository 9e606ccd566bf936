// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package querycache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mvgr-soft/taller/lib/clock"
)

// DefaultStaleAfter is how long a cached read stays fresh.
const DefaultStaleAfter = 5 * time.Minute

// DefaultRetries is how many times a failed read is retried before the
// error propagates. One retry, applied uniformly to reads only.
const DefaultRetries = 1

// Key identifies a cached read. ID is empty for collection reads.
type Key struct {
	Resource string
	ID       string
}

// ListKey tags the collection read of a resource.
func ListKey(resource string) Key {
	return Key{Resource: resource}
}

// DetailKey tags a single-record read.
func DetailKey(resource, id string) Key {
	return Key{Resource: resource, ID: id}
}

func (k Key) String() string {
	if k.ID == "" {
		return k.Resource
	}
	return fmt.Sprintf("%s/%s", k.Resource, k.ID)
}

// Options configures a Cache. Zero values pick the defaults.
type Options struct {
	// StaleAfter is the freshness window. Defaults to DefaultStaleAfter.
	StaleAfter time.Duration
	// Retries is the per-read retry count. Negative disables retries;
	// zero means DefaultRetries.
	Retries int
	// Clock defaults to clock.Real().
	Clock clock.Clock
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Cache is a keyed read-through cache. Safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[Key]entry
	staleAfter time.Duration
	retries    int
	clock      clock.Clock
	logger     *slog.Logger
}

type entry struct {
	value     any
	fetchedAt time.Time
}

// New creates a Cache.
func New(options Options) *Cache {
	staleAfter := options.StaleAfter
	if staleAfter == 0 {
		staleAfter = DefaultStaleAfter
	}

	retries := options.Retries
	if retries == 0 {
		retries = DefaultRetries
	}
	if retries < 0 {
		retries = 0
	}

	clk := options.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		entries:    make(map[Key]entry),
		staleAfter: staleAfter,
		retries:    retries,
		clock:      clk,
		logger:     logger,
	}
}

// Fetch returns the cached value for key while it is fresh; otherwise
// it calls fetch, caches the result, and returns it. A failed fetch is
// retried up to the configured count before the last error propagates;
// failures never overwrite a previously cached value (it stays for the
// next attempt, stale or not the caller asked for current data and
// gets the error instead).
//
// The cached value must have been stored by a Fetch with the same T; a
// mismatch is a programming error and returns an error rather than
// panicking.
func Fetch[T any](ctx context.Context, cache *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	cache.mu.Lock()
	if cached, ok := cache.entries[key]; ok {
		if cache.clock.Now().Sub(cached.fetchedAt) < cache.staleAfter {
			cache.mu.Unlock()
			value, ok := cached.value.(T)
			if !ok {
				return zero, fmt.Errorf("querycache: key %s holds %T, caller wants %T", key, cached.value, zero)
			}
			return value, nil
		}
	}
	retries := cache.retries
	cache.mu.Unlock()

	var value T
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		value, err = fetch(ctx)
		if err == nil {
			break
		}
		if attempt < retries {
			cache.logger.Debug("read failed, retrying",
				"key", key.String(), "error", err)
		}
		if ctx.Err() != nil {
			// Cancelled context: retrying would fail identically.
			break
		}
	}
	if err != nil {
		return zero, err
	}

	cache.mu.Lock()
	cache.entries[key] = entry{value: value, fetchedAt: cache.clock.Now()}
	cache.mu.Unlock()
	return value, nil
}

// Invalidate drops the given keys so the next read refetches. Unknown
// keys are ignored.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// InvalidatePrefix drops every key for a resource, list and details
// alike. This is the blanket form used by manual refresh; mutations
// invalidate the narrower explicit keys instead.
func (c *Cache) InvalidatePrefix(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.Resource == resource {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of cached entries (test hook).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
