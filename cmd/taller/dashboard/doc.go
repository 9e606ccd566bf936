// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package dashboard implements the "dashboard" command, which runs the
// full-screen terminal UI.
package dashboard
