// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvgr-soft/taller/api"
	"github.com/mvgr-soft/taller/lib/snapshot"
	"github.com/mvgr-soft/taller/lib/tui"
	"github.com/mvgr-soft/taller/session"
	"github.com/mvgr-soft/taller/taller"
)

// Screen identifies which top-level view is showing.
type Screen int

const (
	// ScreenLogin is the authentication form.
	ScreenLogin Screen = iota
	// ScreenDashboard is the tabbed resource view.
	ScreenDashboard
)

// sessionExpiredMsg is injected by the Router when the API layer
// reports a dead session mid-flight.
type sessionExpiredMsg struct{}

// statusFadeMsg clears a transient status-bar notice.
type statusFadeMsg struct{}

// statusFadeDelay is how long transient notices stay visible.
const statusFadeDelay = 4 * time.Second

// Router implements api.Navigator for the dashboard. The expiry hook
// runs on HTTP-call goroutines, so navigation is delivered into the
// bubbletea loop as a message rather than by mutating the model.
type Router struct {
	mu      sync.Mutex
	route   string
	program *tea.Program
}

// NewRouter creates a Router starting on the login route.
func NewRouter() *Router {
	return &Router{route: api.RouteLogin}
}

// SetProgram wires the running bubbletea program. Must be called
// before the first API request can fail; in practice, immediately
// after tea.NewProgram.
func (router *Router) SetProgram(program *tea.Program) {
	router.mu.Lock()
	defer router.mu.Unlock()
	router.program = program
}

// CurrentRoute implements api.Navigator.
func (router *Router) CurrentRoute() string {
	router.mu.Lock()
	defer router.mu.Unlock()
	return router.route
}

// NavigateLogin implements api.Navigator.
func (router *Router) NavigateLogin() {
	router.mu.Lock()
	router.route = api.RouteLogin
	program := router.program
	router.mu.Unlock()

	if program != nil {
		program.Send(sessionExpiredMsg{})
	}
}

// setRoute records the route currently on screen, so the expiry hook
// can tell whether the login screen is already showing.
func (router *Router) setRoute(route string) {
	router.mu.Lock()
	defer router.mu.Unlock()
	router.route = route
}

// deleteConfirm is the pending delete awaiting confirmation.
type deleteConfirm struct {
	tab   Tab
	id    int
	label string
}

// Model is the top-level bubbletea model for the taller dashboard.
type Model struct {
	client  *api.Client
	service *taller.Service
	store   *session.Store
	router  *Router

	theme tui.Theme
	keys  KeyMap

	width  int
	height int

	screen Screen
	login  LoginView

	activeTab Tab
	filter    FilterModel
	tabRows   [tabCount][]Row
	filtered  []FilteredRow
	loading   [tabCount]bool
	loadErr   [tabCount]string

	cursor       int
	scrollOffset int

	confirm *deleteConfirm

	// statusText is a transient notice in the status bar (delete
	// outcome, snapshot failure, data age).
	statusText string

	// snapshotPath is where the startup snapshot lives; empty
	// disables snapshotting.
	snapshotPath string

	// snapshotAge is shown until the first live load replaces the
	// snapshot data on the active tab.
	snapshotAge string

	// latest raw records, for writing the next snapshot.
	data snapshot.Snapshot

	// liveLoaded tracks which tabs have been fetched from the
	// backend (as opposed to painted from the snapshot).
	liveLoaded [tabCount]bool
}

// Options configures NewModel.
type Options struct {
	Client  *api.Client
	Service *taller.Service
	Store   *session.Store
	Router  *Router

	// Theme is the starting palette.
	Theme tui.Theme

	// SnapshotPath enables the startup snapshot when non-empty.
	SnapshotPath string
}

// NewModel creates the dashboard model. The screen starts on login
// unless the persisted session still has a token.
func NewModel(options Options) Model {
	model := Model{
		client:       options.Client,
		service:      options.Service,
		store:        options.Store,
		router:       options.Router,
		theme:        options.Theme,
		keys:         DefaultKeyMap,
		login:        NewLoginView(),
		snapshotPath: options.SnapshotPath,
	}
	if options.Store.Authenticated() {
		model.screen = ScreenDashboard
	}
	model.syncRoute()
	return model
}

func (model *Model) syncRoute() {
	if model.router == nil {
		return
	}
	if model.screen == ScreenLogin {
		model.router.setRoute(api.RouteLogin)
	} else {
		model.router.setRoute(api.RouteDashboard)
	}
}

// Init implements tea.Model. On an authenticated start, kick off the
// snapshot read and a live refresh of every tab.
func (model Model) Init() tea.Cmd {
	if model.screen != ScreenDashboard {
		return nil
	}
	return tea.Batch(model.startupCmds()...)
}

func (model *Model) startupCmds() []tea.Cmd {
	commands := []tea.Cmd{loadSnapshot(model.snapshotPath)}
	for tab := Tab(0); tab < tabCount; tab++ {
		model.loading[tab] = true
		commands = append(commands, loadTab(model.service, tab))
	}
	return commands
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case sessionExpiredMsg:
		// The store is already logged out by the expiry hook. Drop
		// to the login screen and discard transient view state.
		model.screen = ScreenLogin
		model.login.Reset()
		model.login.errorText = "La sesión expiró, inicie sesión nuevamente"
		model.confirm = nil
		model.filter.Clear()
		model.syncRoute()
		return model, nil

	case loginResultMsg:
		if model.login.HandleResult(message) {
			model.screen = ScreenDashboard
			model.syncRoute()
			return model, tea.Batch(model.startupCmds()...)
		}
		return model, nil

	case snapshotLoadedMsg:
		return model.applySnapshot(message), nil

	case tabLoadedMsg:
		return model.applyTabLoad(message)

	case deleteDoneMsg:
		model.confirm = nil
		if message.err != nil {
			model.statusText = api.ErrorMessage(message.err, "No se pudo eliminar el registro")
			return model, fadeStatus()
		}
		model.statusText = fmt.Sprintf("Registro %d eliminado", message.id)
		model.loading[message.tab] = true
		return model, tea.Batch(loadTab(model.service, message.tab), fadeStatus())

	case snapshotSavedMsg:
		if message.err != nil {
			model.statusText = "No se pudo guardar la instantánea local"
			return model, fadeStatus()
		}
		return model, nil

	case statusFadeMsg:
		model.statusText = ""
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)
	}

	if model.screen == ScreenLogin {
		cmd := model.login.Update(message, model.client, model.store)
		return model, cmd
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.screen == ScreenLogin {
		if message.String() == "ctrl+c" {
			return model, tea.Quit
		}
		cmd := model.login.Update(message, model.client, model.store)
		return model, cmd
	}

	// Delete confirmation modal swallows everything until resolved.
	if model.confirm != nil {
		switch {
		case key.Matches(message, model.keys.Confirm):
			pending := *model.confirm
			return model, deleteRecord(model.service, pending.tab, pending.id)
		case key.Matches(message, model.keys.Cancel):
			model.confirm = nil
		}
		return model, nil
	}

	// Filter input mode.
	if model.filter.Active {
		switch message.String() {
		case "enter":
			model.filter.Active = false
		case "esc":
			model.filter.Clear()
			model.applyFilter()
		case "backspace":
			if model.filter.Input != "" {
				runes := []rune(model.filter.Input)
				model.filter.Input = string(runes[:len(runes)-1])
				model.applyFilter()
			}
		default:
			if message.Type == tea.KeyRunes {
				model.filter.Input += string(message.Runes)
				model.applyFilter()
			}
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-model.listHeight())
	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(model.listHeight())
	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.scrollOffset = 0
	case key.Matches(message, model.keys.End):
		model.moveCursor(len(model.filtered))

	case key.Matches(message, model.keys.NextTab):
		model.switchTab((model.activeTab + 1) % tabCount)
	case key.Matches(message, model.keys.PrevTab):
		model.switchTab((model.activeTab + tabCount - 1) % tabCount)
	case key.Matches(message, model.keys.TabClientes):
		model.switchTab(TabClientes)
	case key.Matches(message, model.keys.TabEquipos):
		model.switchTab(TabEquipos)
	case key.Matches(message, model.keys.TabReparaciones):
		model.switchTab(TabReparaciones)
	case key.Matches(message, model.keys.TabRepuestos):
		model.switchTab(TabRepuestos)

	case key.Matches(message, model.keys.FilterActivate):
		model.filter.Active = true
		model.cursor = 0
		model.scrollOffset = 0
	case key.Matches(message, model.keys.FilterClear):
		model.filter.Clear()
		model.applyFilter()

	case key.Matches(message, model.keys.Refresh):
		model.service.InvalidateResource(model.activeTab.Resource())
		model.loading[model.activeTab] = true
		return model, loadTab(model.service, model.activeTab)

	case key.Matches(message, model.keys.ThemeToggle):
		model.theme = tui.ThemeFor(model.theme.Mode.Toggle())
		if err := tui.SavePreference(model.theme.Mode); err != nil {
			model.statusText = "No se pudo guardar la preferencia de tema"
			return model, fadeStatus()
		}

	case key.Matches(message, model.keys.Delete):
		if row, ok := model.selectedRow(); ok {
			model.confirm = &deleteConfirm{
				tab:   model.activeTab,
				id:    row.ID,
				label: firstCell(row),
			}
		}
	}

	return model, nil
}

func firstCell(row Row) string {
	if len(row.Cells) > 1 {
		return row.Cells[1]
	}
	return fmt.Sprintf("#%d", row.ID)
}

func fadeStatus() tea.Cmd {
	return tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{}
	})
}

func (model *Model) selectedRow() (Row, bool) {
	if model.cursor < 0 || model.cursor >= len(model.filtered) {
		return Row{}, false
	}
	return model.filtered[model.cursor].Row, true
}

func (model *Model) switchTab(tab Tab) {
	model.activeTab = tab
	model.cursor = 0
	model.scrollOffset = 0
	model.filter.Clear()
	model.applyFilter()
}

func (model *Model) applyFilter() {
	model.filtered = model.filter.Apply(model.tabRows[model.activeTab])
	if model.cursor >= len(model.filtered) {
		model.cursor = len(model.filtered) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.scrollOffset > model.cursor {
		model.scrollOffset = model.cursor
	}
}

func (model *Model) moveCursor(delta int) {
	model.cursor += delta
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(model.filtered) {
		model.cursor = len(model.filtered) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
		return
	}

	height := model.listHeight()
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+height {
		model.scrollOffset = model.cursor - height + 1
	}
}

// applySnapshot paints snapshot data into any tab that has not yet
// received a live load. Live data always wins.
func (model Model) applySnapshot(message snapshotLoadedMsg) Model {
	if message.snap == nil {
		return model
	}
	snap := message.snap

	if !model.liveLoaded[TabClientes] {
		model.tabRows[TabClientes] = clienteRows(snap.Clientes)
	}
	if !model.liveLoaded[TabEquipos] {
		model.tabRows[TabEquipos] = equipoRows(snap.Equipos)
	}
	if !model.liveLoaded[TabReparaciones] {
		model.tabRows[TabReparaciones] = reparacionRows(snap.Reparaciones)
	}
	if !model.liveLoaded[TabRepuestos] {
		model.tabRows[TabRepuestos] = repuestoRows(snap.Repuestos)
	}
	model.snapshotAge = fmt.Sprintf("datos de %s", snap.SavedAt.Local().Format("2006-01-02 15:04"))
	model.applyFilter()
	return model
}

func (model Model) applyTabLoad(message tabLoadedMsg) (tea.Model, tea.Cmd) {
	model.loading[message.tab] = false
	if message.err != nil {
		model.loadErr[message.tab] = api.ErrorMessage(message.err, "Error al cargar datos")
		return model, nil
	}

	model.loadErr[message.tab] = ""
	model.liveLoaded[message.tab] = true
	model.tabRows[message.tab] = message.rows

	switch message.tab {
	case TabClientes:
		model.data.Clientes = message.clientes
	case TabEquipos:
		model.data.Equipos = message.equipos
	case TabReparaciones:
		model.data.Reparaciones = message.reparaciones
	case TabRepuestos:
		model.data.Repuestos = message.repuestos
	}

	if message.tab == model.activeTab {
		model.applyFilter()
	}

	// Once every tab is live, clear the snapshot-age notice and
	// persist a fresh snapshot for the next startup.
	for tab := Tab(0); tab < tabCount; tab++ {
		if !model.liveLoaded[tab] {
			return model, nil
		}
	}
	model.snapshotAge = ""
	snap := model.data
	snap.SavedAt = time.Now()
	return model, saveSnapshot(model.snapshotPath, &snap)
}

// listHeight is the number of table body lines in the left pane.
func (model *Model) listHeight() int {
	// Window minus tab bar, filter line, table header, status bar.
	height := model.height - 4
	if height < 1 {
		return 1
	}
	return height
}

// View implements tea.Model.
func (model Model) View() string {
	if model.width == 0 {
		return ""
	}
	if model.screen == ScreenLogin {
		return model.login.View(model.theme, model.width, model.height)
	}
	return model.dashboardView()
}

func (model Model) dashboardView() string {
	listWidth := model.width / 2
	detailWidth := model.width - listWidth - 3

	table := renderTable(model.activeTab, model.filtered, model.theme,
		listWidth, model.listHeight(), model.cursor, model.scrollOffset)

	detail := ""
	if row, ok := model.selectedRow(); ok {
		detail = renderMarkdown(row.Detail, model.theme, detailWidth)
	}

	borderStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Height(model.listHeight()+1).Render(table),
		borderStyle.Render(strings.Repeat("│\n", model.listHeight())+"│"),
		lipgloss.NewStyle().Width(detailWidth).PaddingLeft(2).Render(detail),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		model.tabBarView(),
		model.filterLineView(),
		body,
		model.statusBarView(),
	)
}

func (model Model) tabBarView() string {
	activeStyle := lipgloss.NewStyle().Foreground(model.theme.TabActive).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.TabInactive)

	parts := make([]string, 0, tabCount)
	for tab := Tab(0); tab < tabCount; tab++ {
		label := fmt.Sprintf("%d:%s", int(tab)+1, tab.Title())
		if model.loading[tab] {
			label += "…"
		}
		if tab == model.activeTab {
			parts = append(parts, activeStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, inactiveStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (model Model) filterLineView() string {
	if model.filter.Active || model.filter.Input != "" {
		prompt := "/" + model.filter.Input
		if model.filter.Active {
			prompt += "▌"
		}
		return lipgloss.NewStyle().Foreground(model.theme.MatchForeground).Render(prompt)
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).
		Render(fmt.Sprintf("%d registros", len(model.filtered)))
}

func (model Model) statusBarView() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.ErrorForeground)
	warnStyle := lipgloss.NewStyle().Foreground(model.theme.WarningForeground)

	if model.confirm != nil {
		return errorStyle.Render(fmt.Sprintf(
			"¿Eliminar %q (id %d)? y/enter confirma, n/esc cancela",
			model.confirm.label, model.confirm.id))
	}
	if err := model.loadErr[model.activeTab]; err != "" {
		return errorStyle.Render(err + "  (r reintenta)")
	}
	if model.statusText != "" {
		return warnStyle.Render(model.statusText)
	}

	help := "j/k mover · tab cambiar · / filtrar · r refrescar · x eliminar · t tema · q salir"
	if model.snapshotAge != "" {
		help = model.snapshotAge + " · " + help
	}
	current := model.store.Current()
	if current.User != "" {
		help = current.User + " · " + help
	}
	return helpStyle.Render(help)
}
