// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package querycache is the read cache behind the resource access
// layer. It reproduces the caching contract the dashboard relies on:
// reads are served from memory while fresh (five minutes by default),
// refetched when stale or missing, and retried exactly once on
// failure. Mutations never go through the cache — the resource layer
// calls [Cache.Invalidate] with the affected keys after a successful
// write, so the next read refetches.
//
// Keys are structural: [ListKey] tags a resource's collection,
// [DetailKey] a single record. Invalidation is exact-key only; there
// is deliberately no cross-resource invalidation even though entities
// embed one another (a customer rename leaves cached device lists
// stale until their own timer runs out). That staleness gap is part of
// the contract, not an oversight to fix here.
package querycache
