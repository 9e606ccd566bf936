// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package taller

import "context"

// Clientes lists all customers.
func (s *Service) Clientes(ctx context.Context) ([]Cliente, error) {
	return list[Cliente](ctx, s, ResourceClientes)
}

// Cliente fetches one customer by id.
func (s *Service) Cliente(ctx context.Context, id int) (Cliente, error) {
	return get[Cliente](ctx, s, ResourceClientes, id)
}

// CreateCliente validates and creates a customer.
func (s *Service) CreateCliente(ctx context.Context, payload ClienteCreate) (Cliente, error) {
	if err := payload.Validate(); err != nil {
		return Cliente{}, err
	}
	return create[Cliente](ctx, s, ResourceClientes, payload)
}

// UpdateCliente validates and applies a partial update.
func (s *Service) UpdateCliente(ctx context.Context, id int, payload ClienteUpdate) (Cliente, error) {
	if err := payload.Validate(); err != nil {
		return Cliente{}, err
	}
	return update[Cliente](ctx, s, ResourceClientes, id, payload)
}

// DeleteCliente removes a customer.
func (s *Service) DeleteCliente(ctx context.Context, id int) error {
	return remove(ctx, s, ResourceClientes, id)
}
