// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvgr-soft/taller/api"
	"github.com/mvgr-soft/taller/lib/snapshot"
	"github.com/mvgr-soft/taller/lib/tui"
	"github.com/mvgr-soft/taller/session"
	"github.com/mvgr-soft/taller/taller"
)

func newTestModel(t *testing.T, authenticated bool) Model {
	t.Helper()

	store := session.Open(filepath.Join(t.TempDir(), "session.json"), nil)
	if authenticated {
		store.Login("token-1", "admin")
	}

	client, err := api.NewClient(api.Config{BaseURL: api.DefaultBaseURL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	model := NewModel(Options{
		Client:  client,
		Service: taller.NewService(client, nil),
		Store:   store,
		Router:  NewRouter(),
		Theme:   tui.DarkTheme,
	})
	model.width = 100
	model.height = 30
	return model
}

func pressKey(t *testing.T, model Model, keys ...string) Model {
	t.Helper()
	for _, name := range keys {
		message := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
		switch name {
		case "tab":
			message = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			message = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			message = tea.KeyMsg{Type: tea.KeyEnter}
		}
		updated, _ := model.Update(message)
		model = updated.(Model)
	}
	return model
}

func TestStartsOnLoginWhenUnauthenticated(t *testing.T) {
	model := newTestModel(t, false)
	if model.screen != ScreenLogin {
		t.Error("unauthenticated start should show the login screen")
	}
	if model.router.CurrentRoute() != api.RouteLogin {
		t.Errorf("router should report the login route, got %s", model.router.CurrentRoute())
	}
	if model.Init() != nil {
		t.Error("no data loads should start before login")
	}
}

func TestStartsOnDashboardWithPersistedSession(t *testing.T) {
	model := newTestModel(t, true)
	if model.screen != ScreenDashboard {
		t.Error("a live session should skip the login screen")
	}
	if model.router.CurrentRoute() != api.RouteDashboard {
		t.Errorf("router should report the dashboard route, got %s", model.router.CurrentRoute())
	}
}

func TestTabLoadPopulatesRows(t *testing.T) {
	model := newTestModel(t, true)

	updated, _ := model.Update(tabLoadedMsg{
		tab: TabClientes,
		rows: clienteRows([]taller.Cliente{
			{ID: 7, Nombre: "Ana", Apellido: "Gómez", Email: "ana@example.com"},
		}),
	})
	model = updated.(Model)

	if len(model.tabRows[TabClientes]) != 1 {
		t.Fatalf("expected 1 row, got %d", len(model.tabRows[TabClientes]))
	}
	if len(model.filtered) != 1 {
		t.Fatalf("active tab should refilter after load, got %d filtered", len(model.filtered))
	}
	if !model.liveLoaded[TabClientes] {
		t.Error("tab should be marked live after a backend load")
	}
}

func TestTabLoadErrorShowsInStatusBar(t *testing.T) {
	model := newTestModel(t, true)

	updated, _ := model.Update(tabLoadedMsg{tab: TabClientes, err: api.ErrUnavailable})
	model = updated.(Model)

	if model.loadErr[TabClientes] == "" {
		t.Fatal("load failure should be recorded")
	}
	if view := model.statusBarView(); view == "" {
		t.Error("status bar should render the load error")
	}
}

func TestSnapshotNeverOverwritesLiveData(t *testing.T) {
	model := newTestModel(t, true)

	// Live load first.
	updated, _ := model.Update(tabLoadedMsg{
		tab:  TabClientes,
		rows: clienteRows([]taller.Cliente{{ID: 7, Nombre: "Ana", Apellido: "Gómez"}}),
	})
	model = updated.(Model)

	// Stale snapshot arrives afterwards.
	updated, _ = model.Update(snapshotLoadedMsg{snap: &snapshot.Snapshot{
		SavedAt:  time.Now().Add(-time.Hour),
		Clientes: []taller.Cliente{{ID: 1, Nombre: "Viejo"}},
		Equipos:  []taller.Equipo{{ID: 2, Tipo: "Tablet", Marca: "Apple", Modelo: "iPad"}},
	}})
	model = updated.(Model)

	if model.tabRows[TabClientes][0].ID != 7 {
		t.Error("snapshot must not replace live data")
	}
	if len(model.tabRows[TabEquipos]) != 1 {
		t.Error("snapshot should paint tabs that have no live data yet")
	}
	if model.snapshotAge == "" {
		t.Error("snapshot age notice should be set while data is stale")
	}
}

func TestSessionExpiryDropsToLogin(t *testing.T) {
	model := newTestModel(t, true)

	updated, _ := model.Update(sessionExpiredMsg{})
	model = updated.(Model)

	if model.screen != ScreenLogin {
		t.Error("expiry should switch to the login screen")
	}
	if model.router.CurrentRoute() != api.RouteLogin {
		t.Error("router should follow the screen switch")
	}
	if model.login.errorText == "" {
		t.Error("the login screen should explain why the user landed there")
	}
}

func TestRouterNavigateLoginWithoutProgram(t *testing.T) {
	router := NewRouter()
	router.setRoute(api.RouteDashboard)

	// No program wired yet; must not panic, and the route updates so
	// a second expiry in flight sees login as current.
	router.NavigateLogin()
	if router.CurrentRoute() != api.RouteLogin {
		t.Errorf("route should be login, got %s", router.CurrentRoute())
	}
}

func TestTabSwitchingResetsFilterAndCursor(t *testing.T) {
	model := newTestModel(t, true)
	updated, _ := model.Update(tabLoadedMsg{tab: TabClientes, rows: clienteRows([]taller.Cliente{
		{ID: 1, Nombre: "Ana", Apellido: "Gómez"},
		{ID: 2, Nombre: "Luis", Apellido: "Pérez"},
	})})
	model = updated.(Model)

	model = pressKey(t, model, "/", "ana")
	if len(model.filtered) != 1 {
		t.Fatalf("filter should narrow to 1 row, got %d", len(model.filtered))
	}

	// Enter confirms the filter text; tab then switches tabs.
	model = pressKey(t, model, "enter", "tab")
	if model.activeTab != TabEquipos {
		t.Fatalf("tab key should advance the tab, got %v", model.activeTab)
	}
	if model.filter.Input != "" {
		t.Error("switching tabs should clear the filter")
	}
	if model.cursor != 0 {
		t.Error("switching tabs should reset the cursor")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	model := newTestModel(t, true)
	updated, _ := model.Update(tabLoadedMsg{tab: TabClientes, rows: clienteRows([]taller.Cliente{
		{ID: 7, Nombre: "Ana", Apellido: "Gómez"},
	})})
	model = updated.(Model)

	model = pressKey(t, model, "x")
	if model.confirm == nil {
		t.Fatal("x should open the delete confirmation")
	}
	if model.confirm.id != 7 {
		t.Errorf("confirmation should target the selected record, got %d", model.confirm.id)
	}

	// While the modal is open navigation keys are swallowed.
	before := model.cursor
	model = pressKey(t, model, "j")
	if model.cursor != before {
		t.Error("modal should swallow list navigation")
	}

	model = pressKey(t, model, "esc")
	if model.confirm != nil {
		t.Error("esc should cancel the pending delete")
	}

	// Confirming produces the delete command.
	model = pressKey(t, model, "x")
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("confirming should issue the delete command")
	}
}

func TestDeleteDoneReloadsTab(t *testing.T) {
	model := newTestModel(t, true)

	updated, cmd := model.Update(deleteDoneMsg{tab: TabClientes, id: 7})
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("a successful delete should trigger a reload")
	}
	if model.statusText == "" {
		t.Error("delete outcome should be announced in the status bar")
	}
	if !model.loading[TabClientes] {
		t.Error("the reloaded tab should be marked loading")
	}
}

func TestThemeToggle(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	model := newTestModel(t, true)

	model = pressKey(t, model, "t")
	if model.theme.Mode != tui.Light {
		t.Errorf("expected light theme after toggle, got %s", model.theme.Mode)
	}
	if mode, ok := tui.LoadPreference(); !ok || mode != tui.Light {
		t.Errorf("toggle should persist the preference, got %q (ok=%v)", mode, ok)
	}
}

func TestDashboardViewRenders(t *testing.T) {
	model := newTestModel(t, true)
	updated, _ := model.Update(tabLoadedMsg{tab: TabReparaciones, rows: reparacionRows([]taller.Reparacion{
		{ID: 1, Descripcion: "Cambio de **pantalla**", Estado: taller.EstadoPendiente,
			FechaIngreso: "2026-08-01", EquipoID: 3},
	})})
	model = updated.(Model)
	model = pressKey(t, model, "3")

	view := model.View()
	if view == "" {
		t.Fatal("dashboard view should render")
	}
}
