// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package taller

import "context"

// Repuestos lists all spare parts.
func (s *Service) Repuestos(ctx context.Context) ([]Repuesto, error) {
	return list[Repuesto](ctx, s, ResourceRepuestos)
}

// Repuesto fetches one spare part by id.
func (s *Service) Repuesto(ctx context.Context, id int) (Repuesto, error) {
	return get[Repuesto](ctx, s, ResourceRepuestos, id)
}

// CreateRepuesto validates and adds a spare part.
func (s *Service) CreateRepuesto(ctx context.Context, payload RepuestoCreate) (Repuesto, error) {
	if err := payload.Validate(); err != nil {
		return Repuesto{}, err
	}
	return create[Repuesto](ctx, s, ResourceRepuestos, payload)
}

// UpdateRepuesto validates and applies a partial update (price, stock).
func (s *Service) UpdateRepuesto(ctx context.Context, id int, payload RepuestoUpdate) (Repuesto, error) {
	if err := payload.Validate(); err != nil {
		return Repuesto{}, err
	}
	return update[Repuesto](ctx, s, ResourceRepuestos, id, payload)
}

// DeleteRepuesto removes a spare part.
func (s *Service) DeleteRepuesto(ctx context.Context, id int) error {
	return remove(ctx, s, ResourceRepuestos, id)
}
