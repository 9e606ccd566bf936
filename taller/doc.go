// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package taller is the typed resource access layer for the four
// workshop entities: clientes (customers), equipos (devices),
// reparaciones (repair tickets) and repuestos (spare parts). Type and
// field names follow the backend's wire format, which is Spanish.
//
// [Service] exposes list/get/create/update/delete per resource. Every
// call is a thin pass through the api client core; reads go through
// the query cache (fresh-for-five-minutes, one retry), writes validate
// client-side first and invalidate the affected cache keys on success:
// the resource's list key on any mutation, plus the record's detail
// key on update. Deletes intentionally leave the detail key alone and
// nothing ever invalidates across resources — both quirks are part of
// the inherited caching contract.
package taller
