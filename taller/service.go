// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package taller

import (
	"context"
	"strconv"

	"github.com/mvgr-soft/taller/api"
	"github.com/mvgr-soft/taller/lib/querycache"
)

// Service bundles the HTTP client core with the read cache. One
// Service instance is shared by the CLI commands and the dashboard.
type Service struct {
	client *api.Client
	cache  *querycache.Cache
}

// NewService creates a Service. cache may be nil, in which case a
// default cache (five-minute freshness, one retry) is created.
func NewService(client *api.Client, cache *querycache.Cache) *Service {
	if cache == nil {
		cache = querycache.New(querycache.Options{})
	}
	return &Service{client: client, cache: cache}
}

// InvalidateResource drops every cached read for a resource, list and
// details alike, so the next reads refetch. The dashboard's
// manual-refresh key uses this.
func (s *Service) InvalidateResource(resource string) {
	s.cache.InvalidatePrefix(resource)
}

func resourcePath(resource string) string {
	return "/" + resource
}

func recordPath(resource string, id int) string {
	return "/" + resource + "/" + strconv.Itoa(id)
}

// list fetches a resource collection through the cache.
func list[T any](ctx context.Context, s *Service, resource string) ([]T, error) {
	return querycache.Fetch(ctx, s.cache, querycache.ListKey(resource),
		func(ctx context.Context) ([]T, error) {
			var records []T
			if err := s.client.Get(ctx, resourcePath(resource), &records); err != nil {
				return nil, err
			}
			return records, nil
		})
}

// get fetches a single record through the cache.
func get[T any](ctx context.Context, s *Service, resource string, id int) (T, error) {
	return querycache.Fetch(ctx, s.cache, querycache.DetailKey(resource, strconv.Itoa(id)),
		func(ctx context.Context) (T, error) {
			var record T
			if err := s.client.Get(ctx, recordPath(resource, id), &record); err != nil {
				var zero T
				return zero, err
			}
			return record, nil
		})
}

// create posts a payload and invalidates the resource's list key.
func create[T any](ctx context.Context, s *Service, resource string, payload any) (T, error) {
	var record T
	if err := s.client.Post(ctx, resourcePath(resource), payload, &record); err != nil {
		var zero T
		return zero, err
	}
	s.cache.Invalidate(querycache.ListKey(resource))
	return record, nil
}

// update puts a partial payload and invalidates the list key plus the
// record's own detail key.
func update[T any](ctx context.Context, s *Service, resource string, id int, payload any) (T, error) {
	var record T
	if err := s.client.Put(ctx, recordPath(resource, id), payload, &record); err != nil {
		var zero T
		return zero, err
	}
	s.cache.Invalidate(
		querycache.ListKey(resource),
		querycache.DetailKey(resource, strconv.Itoa(id)),
	)
	return record, nil
}

// remove deletes a record and invalidates the list key only — the
// detail key is left to age out, matching the inherited invalidation
// scheme.
func remove(ctx context.Context, s *Service, resource string, id int) error {
	if err := s.client.Delete(ctx, recordPath(resource, id)); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.ListKey(resource))
	return nil
}
