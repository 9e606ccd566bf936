// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the taller CLI:
// the command tree with help and typo suggestions, struct-tag flag
// binding, JSON output mode, and the shared application context
// (config, session, API client) that every command runs against.
package cli
