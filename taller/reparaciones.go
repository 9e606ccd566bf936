// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package taller

import "context"

// Reparaciones lists all repair tickets.
func (s *Service) Reparaciones(ctx context.Context) ([]Reparacion, error) {
	return list[Reparacion](ctx, s, ResourceReparaciones)
}

// Reparacion fetches one repair ticket by id.
func (s *Service) Reparacion(ctx context.Context, id int) (Reparacion, error) {
	return get[Reparacion](ctx, s, ResourceReparaciones, id)
}

// CreateReparacion validates and opens a repair ticket.
func (s *Service) CreateReparacion(ctx context.Context, payload ReparacionCreate) (Reparacion, error) {
	if err := payload.Validate(); err != nil {
		return Reparacion{}, err
	}
	return create[Reparacion](ctx, s, ResourceReparaciones, payload)
}

// UpdateReparacion validates and applies a partial update (state
// transitions, closing dates, cost).
func (s *Service) UpdateReparacion(ctx context.Context, id int, payload ReparacionUpdate) (Reparacion, error) {
	if err := payload.Validate(); err != nil {
		return Reparacion{}, err
	}
	return update[Reparacion](ctx, s, ResourceReparaciones, id, payload)
}

// DeleteReparacion removes a repair ticket.
func (s *Service) DeleteReparacion(ctx context.Context, id int) error {
	return remove(ctx, s, ResourceReparaciones, id)
}
