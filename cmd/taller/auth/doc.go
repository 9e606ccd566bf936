// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the login, logout, and whoami commands.
package auth
