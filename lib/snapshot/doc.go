// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package snapshot persists the dashboard's last-known resource data
// so the TUI can paint immediately on startup while fresh data loads
// in the background.
//
// The on-disk format is a fixed header (magic, format version, BLAKE3
// checksum) followed by a zstd-compressed CBOR body. The checksum
// covers the uncompressed body; a mismatch, a truncated file, or an
// unknown version all yield ErrCorrupt and the caller falls back to
// live fetches. A snapshot is advisory data — it is never trusted
// over the backend and never an error source for the user.
package snapshot
