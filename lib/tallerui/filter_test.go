// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"testing"

	"github.com/mvgr-soft/taller/taller"
)

func testRows(t *testing.T) []Row {
	t.Helper()
	return reparacionRows([]taller.Reparacion{
		{ID: 1, Descripcion: "Cambio de pantalla", Estado: taller.EstadoPendiente,
			FechaIngreso: "2026-08-01", EquipoID: 3},
		{ID: 2, Descripcion: "Limpieza de ventilador", Estado: taller.EstadoEnProceso,
			FechaIngreso: "2026-08-02", EquipoID: 4},
		{ID: 3, Descripcion: "Reemplazo de batería", Estado: taller.EstadoCompletada,
			FechaIngreso: "2026-08-03", EquipoID: 3},
	})
}

func TestApplyEmptyFilterKeepsOrder(t *testing.T) {
	rows := testRows(t)
	filter := FilterModel{}

	results := filter.Apply(rows)
	if len(results) != len(rows) {
		t.Fatalf("empty filter should return all %d rows, got %d", len(rows), len(results))
	}
	for i, result := range results {
		if result.Row.ID != rows[i].ID {
			t.Errorf("row %d out of order: got id %d, want %d", i, result.Row.ID, rows[i].ID)
		}
		if result.Score != 0 {
			t.Errorf("row %d should be unscored, got %d", i, result.Score)
		}
	}
}

func TestApplyNarrowsToMatches(t *testing.T) {
	filter := FilterModel{Input: "pantalla"}

	results := filter.Apply(testRows(t))
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	if results[0].Row.ID != 1 {
		t.Errorf("expected the pantalla repair, got id %d", results[0].Row.ID)
	}
	if results[0].Score <= 0 {
		t.Error("match should carry a positive score")
	}
}

func TestApplyMatchesEstado(t *testing.T) {
	filter := FilterModel{Input: "en_proceso"}

	results := filter.Apply(testRows(t))
	if len(results) != 1 || results[0].Row.ID != 2 {
		t.Fatalf("expected only the in-progress repair, got %+v", results)
	}
}

func TestApplyNoMatches(t *testing.T) {
	filter := FilterModel{Input: "zzzzzz"}

	if results := filter.Apply(testRows(t)); len(results) != 0 {
		t.Errorf("expected no matches, got %d", len(results))
	}
}

func TestClear(t *testing.T) {
	filter := FilterModel{Input: "algo", Active: true}
	filter.Clear()
	if filter.Input != "" || filter.Active {
		t.Errorf("Clear should reset state, got %+v", filter)
	}
}

func TestRepuestoRowsFlagLowStock(t *testing.T) {
	rows := repuestoRows([]taller.Repuesto{
		{ID: 1, Nombre: "pantalla", Stock: 2},
		{ID: 2, Nombre: "teclado", Stock: 10},
	})
	if !rows[0].LowStock {
		t.Error("stock 2 should be flagged low")
	}
	if rows[1].LowStock {
		t.Error("stock 10 should not be flagged low")
	}
}

func TestReparacionRowsUseFirstDescriptionLine(t *testing.T) {
	rows := reparacionRows([]taller.Reparacion{
		{ID: 1, Descripcion: "Cambio de pantalla\n\nDetalle largo", Estado: taller.EstadoPendiente},
	})
	if rows[0].Cells[1] != "Cambio de pantalla" {
		t.Errorf("summary cell should be the first line, got %q", rows[0].Cells[1])
	}
	if rows[0].Estado != taller.EstadoPendiente {
		t.Errorf("row should carry the estado for coloring, got %q", rows[0].Estado)
	}
}

func TestEquipoRowsPreferEmbeddedOwnerName(t *testing.T) {
	rows := equipoRows([]taller.Equipo{
		{ID: 1, Tipo: "Notebook", Marca: "Lenovo", Modelo: "T14", ClienteID: 7,
			Cliente: &taller.Cliente{Nombre: "Ana", Apellido: "Gómez"}},
		{ID: 2, Tipo: "Tablet", Marca: "Apple", Modelo: "iPad", ClienteID: 9},
	})
	if rows[0].Cells[4] != "Ana Gómez" {
		t.Errorf("expected owner name, got %q", rows[0].Cells[4])
	}
	if rows[1].Cells[4] != "9" {
		t.Errorf("expected owner id fallback, got %q", rows[1].Cells[4])
	}
}
