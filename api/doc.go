// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP client core for the workshop backend — the
// only component in the repository permitted to speak to it.
//
// [Client] wraps one base URL (resolved once at startup by
// [ResolveBaseURL]) and an ordered pair of hook chains. Request hooks
// run before dispatch and may mutate the outgoing request; [BearerHook]
// attaches "Authorization: Bearer <token>" from the session store when
// a credential is present and leaves unauthenticated requests untouched.
// Response hooks observe every outcome; [ExpiryHook] implements the
// global session-expiry policy: on [ErrSessionExpired] it clears the
// session store and asks the [Navigator] to show the login screen,
// unless that screen is already current (the guard that prevents
// redirect loops).
//
// Failures are classified exactly once, in the dispatch path:
//
//   - [ErrSessionExpired] — HTTP 401 from any authenticated route.
//   - [ErrCredentialsRejected] — HTTP 401 from the login call itself.
//     Login is dispatched on a separate path so that a wrong password
//     never tears down an unrelated existing session.
//   - [ErrUnavailable] — no response received at all.
//   - any other non-2xx — a bare [*APIError] for the caller to handle.
//
// All server failures carry a [*APIError] (extract with errors.As) with
// the HTTP status and the server-supplied message. The core never
// swallows an error and never retries; retry policy for reads lives in
// the query cache layer.
package api
