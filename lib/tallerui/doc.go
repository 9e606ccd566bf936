// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package tallerui implements the interactive terminal dashboard for
// the taller workshop backend. One tab per resource (clientes,
// equipos, reparaciones, repuestos), a fuzzy filter, a detail pane
// with markdown rendering for repair descriptions, and a
// delete-confirmation modal.
//
// The dashboard starts from the last persisted snapshot (if any) so
// it paints immediately, then refreshes every tab from the backend in
// the background. A session expiry reported by the API layer drops
// the user back to the login screen; logging in again resumes where
// they were.
package tallerui
