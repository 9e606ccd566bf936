// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package taller

import "context"

// Equipos lists all registered devices.
func (s *Service) Equipos(ctx context.Context) ([]Equipo, error) {
	return list[Equipo](ctx, s, ResourceEquipos)
}

// Equipo fetches one device by id.
func (s *Service) Equipo(ctx context.Context, id int) (Equipo, error) {
	return get[Equipo](ctx, s, ResourceEquipos, id)
}

// CreateEquipo validates and registers a device.
func (s *Service) CreateEquipo(ctx context.Context, payload EquipoCreate) (Equipo, error) {
	if err := payload.Validate(); err != nil {
		return Equipo{}, err
	}
	return create[Equipo](ctx, s, ResourceEquipos, payload)
}

// UpdateEquipo validates and applies a partial update.
func (s *Service) UpdateEquipo(ctx context.Context, id int, payload EquipoUpdate) (Equipo, error) {
	if err := payload.Validate(); err != nil {
		return Equipo{}, err
	}
	return update[Equipo](ctx, s, ResourceEquipos, id, payload)
}

// DeleteEquipo removes a device.
func (s *Service) DeleteEquipo(ctx context.Context, id int) error {
	return remove(ctx, s, ResourceEquipos, id)
}
