// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mvgr-soft/taller/session"
)

// Well-known routes for the Navigator contract.
const (
	// RouteLogin is the login screen route. The expiry hook skips the
	// forced navigation when this is already the current route, so a
	// failing call issued from the login screen cannot bounce the user
	// off of it.
	RouteLogin = "/login"
	// RouteDashboard is the main resource view.
	RouteDashboard = "/dashboard"
)

// Navigator is how the client core forces navigation to the login
// screen when a session expires mid-flight. The dashboard implements
// it by switching screens; the plain CLI has no routes and prints a
// re-login hint instead.
type Navigator interface {
	// CurrentRoute returns the route being displayed right now.
	CurrentRoute() string
	// NavigateLogin performs a hard switch to the login screen,
	// discarding transient view state.
	NavigateLogin()
}

// BearerHook returns the request hook that attaches the session
// credential. When the store holds a token the hook sets
// "Authorization: Bearer <token>"; when it doesn't, the request passes
// through without an Authorization header at all.
func BearerHook(store *session.Store) RequestHook {
	return func(request *http.Request) {
		if token := store.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// ExpiryHook returns the response hook implementing the global expiry
// policy: on ErrSessionExpired, log out the store (exactly once per
// failing response — Logout is idempotent) and navigate to the login
// screen unless it is already showing. Other failures pass through
// untouched; the hook never swallows the error either way.
//
// navigator may be nil for callers with no navigable surface.
func ExpiryHook(store *session.Store, navigator Navigator, logger *slog.Logger) ResponseHook {
	if logger == nil {
		logger = slog.Default()
	}
	return func(_ *http.Response, err error) {
		if !errors.Is(err, ErrSessionExpired) {
			return
		}

		logger.Info("session expired, logging out")
		store.Logout()

		if navigator == nil {
			return
		}
		if navigator.CurrentRoute() != RouteLogin {
			navigator.NavigateLogin()
		}
	}
}
