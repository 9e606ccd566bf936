// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package session holds the single source of truth for "who is logged
// in" to the workshop API.
//
// [Store] is an in-memory state container with a narrow mutation API:
// [Store.Login] and [Store.Logout] replace the whole session atomically,
// [Store.Current] returns a snapshot without touching disk or network.
// Every component that needs authentication state — the HTTP client
// core's bearer hook, the CLI commands, the dashboard — reads the same
// Store instance; nothing else in the repository mutates it.
//
// The session survives process restarts: mutations persist the state as
// a JSON file (mode 0600, it contains an access token) at the path
// returned by [FilePath], and [Open] rehydrates from that file at
// startup. Persistence is best-effort by contract — a failed write is
// logged and the in-memory state stays authoritative; callers never see
// a storage error. A missing or corrupt file simply yields the empty
// (logged-out) session.
//
// [Store.Subscribe] registers observers for session changes. The
// dashboard uses this to drop back to its login screen when the HTTP
// core force-logs-out an expired session mid-flight.
package session
