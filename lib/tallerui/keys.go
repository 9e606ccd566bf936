// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard.
type KeyMap struct {
	// List navigation.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Tab switching. NextTab cycles; the numbered bindings jump.
	NextTab         key.Binding
	PrevTab         key.Binding
	TabClientes     key.Binding
	TabEquipos      key.Binding
	TabReparaciones key.Binding
	TabRepuestos    key.Binding

	// Filter.
	FilterActivate key.Binding
	FilterClear    key.Binding

	// Actions.
	Refresh     key.Binding
	Delete      key.Binding
	ThemeToggle key.Binding

	// Modal confirmation.
	Confirm key.Binding
	Cancel  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),

	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous tab"),
	),
	TabClientes: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "clientes"),
	),
	TabEquipos: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "equipos"),
	),
	TabReparaciones: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "reparaciones"),
	),
	TabRepuestos: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "repuestos"),
	),

	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),

	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	ThemeToggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),

	Confirm: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("y/enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "n"),
		key.WithHelp("n/esc", "cancel"),
	),

	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
