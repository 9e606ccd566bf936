// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package taller

import (
	"fmt"
	"strings"
)

// ValidationError reports a payload rejected client-side, before any
// network call was made. The server never saw the request.
type ValidationError struct {
	// Resource is the resource the payload targeted.
	Resource string
	// Problems are human-readable field complaints.
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid payload: %s", e.Resource, strings.Join(e.Problems, "; "))
}

// validator collects field complaints for one payload.
type validator struct {
	resource string
	problems []string
}

func (v *validator) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.problems = append(v.problems, field+" is required")
	}
}

func (v *validator) requireID(field string, id int) {
	if id <= 0 {
		v.problems = append(v.problems, field+" must reference an existing record")
	}
}

func (v *validator) complain(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Resource: v.resource, Problems: v.problems}
}

// Validate checks the required customer fields.
func (p ClienteCreate) Validate() error {
	v := validator{resource: ResourceClientes}
	v.require("nombre", p.Nombre)
	v.require("apellido", p.Apellido)
	v.require("email", p.Email)
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		v.complain("email %q is not an address", p.Email)
	}
	v.require("telefono", p.Telefono)
	return v.err()
}

// Validate checks that set fields are not blanked out.
func (p ClienteUpdate) Validate() error {
	v := validator{resource: ResourceClientes}
	for field, value := range map[string]*string{
		"nombre":   p.Nombre,
		"apellido": p.Apellido,
		"email":    p.Email,
		"telefono": p.Telefono,
	} {
		if value != nil {
			v.require(field, *value)
		}
	}
	if p.Email != nil && *p.Email != "" && !strings.Contains(*p.Email, "@") {
		v.complain("email %q is not an address", *p.Email)
	}
	return v.err()
}

// Validate checks the required device fields.
func (p EquipoCreate) Validate() error {
	v := validator{resource: ResourceEquipos}
	v.require("tipo", p.Tipo)
	v.require("marca", p.Marca)
	v.require("modelo", p.Modelo)
	v.requireID("clienteId", p.ClienteID)
	return v.err()
}

// Validate checks that set fields remain usable.
func (p EquipoUpdate) Validate() error {
	v := validator{resource: ResourceEquipos}
	for field, value := range map[string]*string{
		"tipo":   p.Tipo,
		"marca":  p.Marca,
		"modelo": p.Modelo,
	} {
		if value != nil {
			v.require(field, *value)
		}
	}
	if p.ClienteID != nil {
		v.requireID("clienteId", *p.ClienteID)
	}
	return v.err()
}

// Validate checks the required repair-ticket fields and the state enum.
func (p ReparacionCreate) Validate() error {
	v := validator{resource: ResourceReparaciones}
	v.require("descripcion", p.Descripcion)
	v.require("fechaIngreso", p.FechaIngreso)
	if !p.Estado.Valid() {
		v.complain("estado %q is not one of %v", p.Estado, Estados)
	}
	if p.Costo < 0 {
		v.complain("costo must not be negative")
	}
	v.requireID("equipoId", p.EquipoID)
	return v.err()
}

// Validate checks that set fields remain usable.
func (p ReparacionUpdate) Validate() error {
	v := validator{resource: ResourceReparaciones}
	if p.Descripcion != nil {
		v.require("descripcion", *p.Descripcion)
	}
	if p.Estado != nil && !p.Estado.Valid() {
		v.complain("estado %q is not one of %v", *p.Estado, Estados)
	}
	if p.Costo != nil && *p.Costo < 0 {
		v.complain("costo must not be negative")
	}
	if p.EquipoID != nil {
		v.requireID("equipoId", *p.EquipoID)
	}
	return v.err()
}

// Validate checks the required spare-part fields.
func (p RepuestoCreate) Validate() error {
	v := validator{resource: ResourceRepuestos}
	v.require("nombre", p.Nombre)
	if p.Precio < 0 {
		v.complain("precio must not be negative")
	}
	if p.Stock < 0 {
		v.complain("stock must not be negative")
	}
	return v.err()
}

// Validate checks that set fields remain usable.
func (p RepuestoUpdate) Validate() error {
	v := validator{resource: ResourceRepuestos}
	if p.Nombre != nil {
		v.require("nombre", *p.Nombre)
	}
	if p.Precio != nil && *p.Precio < 0 {
		v.complain("precio must not be negative")
	}
	if p.Stock != nil && *p.Stock < 0 {
		v.complain("stock must not be negative")
	}
	return v.err()
}
