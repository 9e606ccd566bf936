// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package resources implements the CRUD command trees for the four
// managed resources: clientes, equipos, reparaciones, repuestos.
// Each resource gets list/show/create/update/delete subcommands with
// the same shape; create and update take JSONC payload files so
// records can be kept as annotated templates.
package resources
