// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal UI building blocks for the
// taller dashboard: the light/dark theme with its persistence and
// terminal-background detection, and an fzf-backed fuzzy matcher for
// the resource filter.
//
// The dashboard itself lives in lib/tallerui; this package holds only
// the pieces that are independent of the resource domain.
package tui
