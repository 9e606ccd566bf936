// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package taller

// Resource names, as they appear in API paths and cache keys.
const (
	ResourceClientes     = "clientes"
	ResourceEquipos      = "equipos"
	ResourceReparaciones = "reparaciones"
	ResourceRepuestos    = "repuestos"
)

// Resources lists the four managed resources in display order.
var Resources = []string{
	ResourceClientes,
	ResourceEquipos,
	ResourceReparaciones,
	ResourceRepuestos,
}

// Cliente is a customer record.
type Cliente struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion,omitempty"`
}

// ClienteCreate is the payload for creating a customer.
type ClienteCreate struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion,omitempty"`
}

// ClienteUpdate is a partial update; nil fields are left unchanged.
type ClienteUpdate struct {
	Nombre    *string `json:"nombre,omitempty"`
	Apellido  *string `json:"apellido,omitempty"`
	Email     *string `json:"email,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

// Equipo is a device brought in for repair. The backend may embed the
// owning customer in list responses.
type Equipo struct {
	ID          int      `json:"id"`
	Tipo        string   `json:"tipo"`
	Marca       string   `json:"marca"`
	Modelo      string   `json:"modelo"`
	NumeroSerie string   `json:"numeroSerie,omitempty"`
	ClienteID   int      `json:"clienteId"`
	Cliente     *Cliente `json:"cliente,omitempty"`
}

// EquipoCreate is the payload for registering a device.
type EquipoCreate struct {
	Tipo        string `json:"tipo"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	NumeroSerie string `json:"numeroSerie,omitempty"`
	ClienteID   int    `json:"clienteId"`
}

// EquipoUpdate is a partial update; nil fields are left unchanged.
type EquipoUpdate struct {
	Tipo        *string `json:"tipo,omitempty"`
	Marca       *string `json:"marca,omitempty"`
	Modelo      *string `json:"modelo,omitempty"`
	NumeroSerie *string `json:"numeroSerie,omitempty"`
	ClienteID   *int    `json:"clienteId,omitempty"`
}

// Estado is the lifecycle state of a repair ticket.
type Estado string

const (
	EstadoPendiente  Estado = "PENDIENTE"
	EstadoEnProceso  Estado = "EN_PROCESO"
	EstadoCompletada Estado = "COMPLETADA"
	EstadoCancelada  Estado = "CANCELADA"
)

// Estados lists the valid repair states in lifecycle order.
var Estados = []Estado{EstadoPendiente, EstadoEnProceso, EstadoCompletada, EstadoCancelada}

// Valid reports whether e is one of the four known states.
func (e Estado) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoEnProceso, EstadoCompletada, EstadoCancelada:
		return true
	}
	return false
}

// Reparacion is a repair ticket. Dates travel as ISO strings on the
// wire; they are kept as strings end to end since the client only
// displays them.
type Reparacion struct {
	ID           int     `json:"id"`
	Descripcion  string  `json:"descripcion"`
	FechaIngreso string  `json:"fechaIngreso"`
	FechaSalida  string  `json:"fechaSalida,omitempty"`
	Estado       Estado  `json:"estado"`
	Costo        float64 `json:"costo,omitempty"`
	EquipoID     int     `json:"equipoId"`
	Equipo       *Equipo `json:"equipo,omitempty"`
}

// ReparacionCreate is the payload for opening a repair ticket.
type ReparacionCreate struct {
	Descripcion  string  `json:"descripcion"`
	FechaIngreso string  `json:"fechaIngreso"`
	FechaSalida  string  `json:"fechaSalida,omitempty"`
	Estado       Estado  `json:"estado"`
	Costo        float64 `json:"costo,omitempty"`
	EquipoID     int     `json:"equipoId"`
}

// ReparacionUpdate is a partial update; nil fields are left unchanged.
type ReparacionUpdate struct {
	Descripcion  *string  `json:"descripcion,omitempty"`
	FechaIngreso *string  `json:"fechaIngreso,omitempty"`
	FechaSalida  *string  `json:"fechaSalida,omitempty"`
	Estado       *Estado  `json:"estado,omitempty"`
	Costo        *float64 `json:"costo,omitempty"`
	EquipoID     *int     `json:"equipoId,omitempty"`
}

// Repuesto is a spare part in stock.
type Repuesto struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Categoria   string  `json:"categoria,omitempty"`
}

// RepuestoCreate is the payload for adding a spare part.
type RepuestoCreate struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Categoria   string  `json:"categoria,omitempty"`
}

// RepuestoUpdate is a partial update; nil fields are left unchanged.
type RepuestoUpdate struct {
	Nombre      *string  `json:"nombre,omitempty"`
	Descripcion *string  `json:"descripcion,omitempty"`
	Precio      *float64 `json:"precio,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Categoria   *string  `json:"categoria,omitempty"`
}
