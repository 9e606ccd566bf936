// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvgr-soft/taller/lib/snapshot"
	"github.com/mvgr-soft/taller/taller"
)

// Tab identifies which resource view is active. Tab values index
// taller.Resources.
type Tab int

const (
	TabClientes Tab = iota
	TabEquipos
	TabReparaciones
	TabRepuestos

	tabCount
)

// Resource returns the resource name for a tab.
func (tab Tab) Resource() string {
	return taller.Resources[int(tab)]
}

// Title returns the tab's display label.
func (tab Tab) Title() string {
	switch tab {
	case TabClientes:
		return "Clientes"
	case TabEquipos:
		return "Equipos"
	case TabReparaciones:
		return "Reparaciones"
	case TabRepuestos:
		return "Repuestos"
	default:
		return "?"
	}
}

// Row is one rendered table row. Rows are built from the typed
// resource records so the list and filter code are resource-agnostic.
type Row struct {
	// ID is the record's backend id, used for delete and detail.
	ID int

	// Cells are the column values, aligned with the tab's headers.
	Cells []string

	// SearchText is the lowercased concatenation of the searchable
	// fields, used by the fuzzy filter.
	SearchText string

	// Estado is set for reparaciones rows so the list can color the
	// state cell. Empty elsewhere.
	Estado taller.Estado

	// LowStock marks repuestos rows at or below the reorder level.
	LowStock bool

	// Detail is the markdown body shown in the detail pane. For
	// reparaciones this is the repair description; other resources
	// synthesize a small field listing.
	Detail string
}

// lowStockThreshold flags spare parts that need reordering.
const lowStockThreshold = 3

// tabHeaders returns the column headers for a tab.
func tabHeaders(tab Tab) []string {
	switch tab {
	case TabClientes:
		return []string{"ID", "Nombre", "Email", "Teléfono"}
	case TabEquipos:
		return []string{"ID", "Tipo", "Marca", "Modelo", "Cliente"}
	case TabReparaciones:
		return []string{"ID", "Descripción", "Estado", "Ingreso", "Costo"}
	case TabRepuestos:
		return []string{"ID", "Nombre", "Precio", "Stock", "Categoría"}
	default:
		return nil
	}
}

func searchText(fields ...string) string {
	return strings.ToLower(strings.Join(fields, " "))
}

func clienteRows(clientes []taller.Cliente) []Row {
	rows := make([]Row, 0, len(clientes))
	for _, cliente := range clientes {
		fullName := cliente.Nombre + " " + cliente.Apellido
		rows = append(rows, Row{
			ID:         cliente.ID,
			Cells:      []string{strconv.Itoa(cliente.ID), fullName, cliente.Email, cliente.Telefono},
			SearchText: searchText(fullName, cliente.Email, cliente.Telefono, cliente.Direccion),
			Detail: fmt.Sprintf("# %s\n\n- **Email:** %s\n- **Teléfono:** %s\n- **Dirección:** %s\n",
				fullName, cliente.Email, cliente.Telefono, orDash(cliente.Direccion)),
		})
	}
	return rows
}

func equipoRows(equipos []taller.Equipo) []Row {
	rows := make([]Row, 0, len(equipos))
	for _, equipo := range equipos {
		owner := strconv.Itoa(equipo.ClienteID)
		if equipo.Cliente != nil {
			owner = equipo.Cliente.Nombre + " " + equipo.Cliente.Apellido
		}
		rows = append(rows, Row{
			ID: equipo.ID,
			Cells: []string{strconv.Itoa(equipo.ID), equipo.Tipo, equipo.Marca,
				equipo.Modelo, owner},
			SearchText: searchText(equipo.Tipo, equipo.Marca, equipo.Modelo,
				equipo.NumeroSerie, owner),
			Detail: fmt.Sprintf("# %s %s\n\n- **Tipo:** %s\n- **Nº de serie:** %s\n- **Cliente:** %s\n",
				equipo.Marca, equipo.Modelo, equipo.Tipo, orDash(equipo.NumeroSerie), owner),
		})
	}
	return rows
}

func reparacionRows(reparaciones []taller.Reparacion) []Row {
	rows := make([]Row, 0, len(reparaciones))
	for _, reparacion := range reparaciones {
		device := strconv.Itoa(reparacion.EquipoID)
		if reparacion.Equipo != nil {
			device = reparacion.Equipo.Marca + " " + reparacion.Equipo.Modelo
		}
		summary := firstLine(reparacion.Descripcion)
		rows = append(rows, Row{
			ID: reparacion.ID,
			Cells: []string{strconv.Itoa(reparacion.ID), summary, string(reparacion.Estado),
				reparacion.FechaIngreso, formatCosto(reparacion.Costo)},
			SearchText: searchText(reparacion.Descripcion, string(reparacion.Estado),
				reparacion.FechaIngreso, device),
			Estado: reparacion.Estado,
			Detail: reparacion.Descripcion + fmt.Sprintf(
				"\n\n---\n\n- **Equipo:** %s\n- **Ingreso:** %s\n- **Salida:** %s\n- **Costo:** %s\n",
				device, reparacion.FechaIngreso, orDash(reparacion.FechaSalida),
				formatCosto(reparacion.Costo)),
		})
	}
	return rows
}

func repuestoRows(repuestos []taller.Repuesto) []Row {
	rows := make([]Row, 0, len(repuestos))
	for _, repuesto := range repuestos {
		rows = append(rows, Row{
			ID: repuesto.ID,
			Cells: []string{strconv.Itoa(repuesto.ID), repuesto.Nombre,
				formatCosto(repuesto.Precio), strconv.Itoa(repuesto.Stock), repuesto.Categoria},
			SearchText: searchText(repuesto.Nombre, repuesto.Descripcion, repuesto.Categoria),
			LowStock:   repuesto.Stock <= lowStockThreshold,
			Detail: fmt.Sprintf("# %s\n\n%s\n\n- **Precio:** %s\n- **Stock:** %d\n- **Categoría:** %s\n",
				repuesto.Nombre, repuesto.Descripcion, formatCosto(repuesto.Precio),
				repuesto.Stock, orDash(repuesto.Categoria)),
		})
	}
	return rows
}

func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}

func firstLine(text string) string {
	if index := strings.IndexByte(text, '\n'); index >= 0 {
		return text[:index]
	}
	return text
}

func formatCosto(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// --- Async data commands ---

// tabLoadedMsg delivers one tab's refreshed rows, or the fetch error.
// The raw records ride along so the model can persist them to the
// startup snapshot once every tab has loaded.
type tabLoadedMsg struct {
	tab  Tab
	rows []Row
	err  error

	clientes     []taller.Cliente
	equipos      []taller.Equipo
	reparaciones []taller.Reparacion
	repuestos    []taller.Repuesto
}

// deleteDoneMsg reports the outcome of a delete. On success the tab
// reloads via the follow-up command.
type deleteDoneMsg struct {
	tab Tab
	id  int
	err error
}

// snapshotLoadedMsg carries the startup snapshot, nil when absent or
// corrupt. Corruption is not surfaced to the user; the dashboard just
// starts cold.
type snapshotLoadedMsg struct {
	snap *snapshot.Snapshot
}

// snapshotSavedMsg reports a background snapshot write. Failures are
// shown in the status bar but never abort anything.
type snapshotSavedMsg struct {
	err error
}

// loadTab fetches one tab's records from the backend and converts
// them to rows.
func loadTab(service *taller.Service, tab Tab) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		loaded := tabLoadedMsg{tab: tab}
		switch tab {
		case TabClientes:
			loaded.clientes, loaded.err = service.Clientes(ctx)
			loaded.rows = clienteRows(loaded.clientes)
		case TabEquipos:
			loaded.equipos, loaded.err = service.Equipos(ctx)
			loaded.rows = equipoRows(loaded.equipos)
		case TabReparaciones:
			loaded.reparaciones, loaded.err = service.Reparaciones(ctx)
			loaded.rows = reparacionRows(loaded.reparaciones)
		case TabRepuestos:
			loaded.repuestos, loaded.err = service.Repuestos(ctx)
			loaded.rows = repuestoRows(loaded.repuestos)
		}
		if loaded.err != nil {
			return tabLoadedMsg{tab: tab, err: loaded.err}
		}
		return loaded
	}
}

// deleteRecord removes one record from the backend.
func deleteRecord(service *taller.Service, tab Tab, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		switch tab {
		case TabClientes:
			err = service.DeleteCliente(ctx, id)
		case TabEquipos:
			err = service.DeleteEquipo(ctx, id)
		case TabReparaciones:
			err = service.DeleteReparacion(ctx, id)
		case TabRepuestos:
			err = service.DeleteRepuesto(ctx, id)
		}
		return deleteDoneMsg{tab: tab, id: id, err: err}
	}
}

// loadSnapshot reads the startup snapshot off the UI thread.
func loadSnapshot(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return snapshotLoadedMsg{}
		}
		snap, err := snapshot.Load(path)
		if err != nil {
			return snapshotLoadedMsg{}
		}
		return snapshotLoadedMsg{snap: snap}
	}
}

// saveSnapshot persists the current backend data for the next startup.
func saveSnapshot(path string, snap *snapshot.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return nil
		}
		return snapshotSavedMsg{err: snapshot.Save(path, snap)}
	}
}
