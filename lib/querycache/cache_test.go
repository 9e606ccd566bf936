// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package querycache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mvgr-soft/taller/lib/clock"
)

func newTestCache(t *testing.T) (*Cache, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake()
	return New(Options{Clock: fake}), fake
}

func TestFreshHitSkipsFetch(t *testing.T) {
	cache, _ := newTestCache(t)
	key := ListKey("clientes")

	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return []string{"ana", "luis"}, nil
	}

	for range 3 {
		value, err := Fetch(context.Background(), cache, key, fetch)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if len(value) != 2 {
			t.Fatalf("unexpected value: %v", value)
		}
	}
	if calls != 1 {
		t.Errorf("expected a single upstream fetch, got %d", calls)
	}
}

func TestStaleEntryRefetches(t *testing.T) {
	cache, fake := newTestCache(t)
	key := ListKey("equipos")

	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if value, _ := Fetch(context.Background(), cache, key, fetch); value != 1 {
		t.Fatalf("unexpected first value: %d", value)
	}

	// Just inside the freshness window: still cached.
	fake.Advance(DefaultStaleAfter - time.Second)
	if value, _ := Fetch(context.Background(), cache, key, fetch); value != 1 {
		t.Errorf("entry went stale too early")
	}

	// Past the window: refetch.
	fake.Advance(2 * time.Second)
	if value, _ := Fetch(context.Background(), cache, key, fetch); value != 2 {
		t.Errorf("stale entry was not refetched")
	}
}

func TestReadRetriesOnce(t *testing.T) {
	cache, _ := newTestCache(t)

	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}

	value, err := Fetch(context.Background(), cache, ListKey("repuestos"), fetch)
	if err != nil {
		t.Fatalf("Fetch failed after retry: %v", err)
	}
	if value != "ok" || calls != 2 {
		t.Errorf("expected one retry (2 calls), got %d calls, value %q", calls, value)
	}
}

func TestPersistentFailurePropagates(t *testing.T) {
	cache, _ := newTestCache(t)

	calls := 0
	broken := errors.New("boom")
	fetch := func(context.Context) (string, error) {
		calls++
		return "", broken
	}

	_, err := Fetch(context.Background(), cache, ListKey("reparaciones"), fetch)
	if !errors.Is(err, broken) {
		t.Fatalf("expected the fetch error, got %v", err)
	}
	if calls != 1+DefaultRetries {
		t.Errorf("expected %d attempts, got %d", 1+DefaultRetries, calls)
	}
	if cache.Len() != 0 {
		t.Error("failed reads must not populate the cache")
	}
}

func TestInvalidateExactKeys(t *testing.T) {
	cache, _ := newTestCache(t)
	listKey := ListKey("clientes")
	detailKey := DetailKey("clientes", "7")
	otherList := ListKey("equipos")

	fetchCount := map[Key]int{}
	fetchFor := func(key Key) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			fetchCount[key]++
			return key.String(), nil
		}
	}

	for _, key := range []Key{listKey, detailKey, otherList} {
		if _, err := Fetch(context.Background(), cache, key, fetchFor(key)); err != nil {
			t.Fatal(err)
		}
	}

	// The update-invalidation scheme: list key plus the record's own
	// detail key — nothing else.
	cache.Invalidate(listKey, detailKey)

	for _, key := range []Key{listKey, detailKey, otherList} {
		if _, err := Fetch(context.Background(), cache, key, fetchFor(key)); err != nil {
			t.Fatal(err)
		}
	}

	if fetchCount[listKey] != 2 || fetchCount[detailKey] != 2 {
		t.Errorf("invalidated keys should refetch: %v", fetchCount)
	}
	if fetchCount[otherList] != 1 {
		t.Errorf("cross-resource keys must not be invalidated: %v", fetchCount)
	}
}

func TestInvalidatePrefixDropsWholeResource(t *testing.T) {
	cache, _ := newTestCache(t)
	listKey := ListKey("clientes")
	detailKey := DetailKey("clientes", "7")
	otherList := ListKey("equipos")

	fetchCount := map[Key]int{}
	fetchFor := func(key Key) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			fetchCount[key]++
			return key.String(), nil
		}
	}

	for _, key := range []Key{listKey, detailKey, otherList} {
		if _, err := Fetch(context.Background(), cache, key, fetchFor(key)); err != nil {
			t.Fatal(err)
		}
	}

	cache.InvalidatePrefix("clientes")

	for _, key := range []Key{listKey, detailKey, otherList} {
		if _, err := Fetch(context.Background(), cache, key, fetchFor(key)); err != nil {
			t.Fatal(err)
		}
	}

	if fetchCount[listKey] != 2 || fetchCount[detailKey] != 2 {
		t.Errorf("resource keys should refetch after prefix invalidation: %v", fetchCount)
	}
	if fetchCount[otherList] != 1 {
		t.Errorf("other resources must survive prefix invalidation: %v", fetchCount)
	}
}

func TestTypeMismatchIsAnError(t *testing.T) {
	cache, _ := newTestCache(t)
	key := ListKey("clientes")

	if _, err := Fetch(context.Background(), cache, key, func(context.Context) (int, error) {
		return 1, nil
	}); err != nil {
		t.Fatal(err)
	}

	_, err := Fetch(context.Background(), cache, key, func(context.Context) (string, error) {
		return "", nil
	})
	if err == nil {
		t.Fatal("expected a type-mismatch error")
	}
}

func TestCancelledContextStopsRetry(t *testing.T) {
	cache, _ := newTestCache(t)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		cancel()
		return "", context.Canceled
	}

	_, err := Fetch(ctx, cache, ListKey("clientes"), fetch)
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("cancelled context should not retry, got %d calls", calls)
	}
}
