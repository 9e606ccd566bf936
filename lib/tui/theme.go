// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mvgr-soft/taller/taller"
)

// Mode names a theme. The two values are also the wire format of the
// preference file and the config file's theme field.
type Mode string

const (
	// Light is the light-background palette.
	Light Mode = "light"
	// Dark is the dark-background palette.
	Dark Mode = "dark"
)

// Toggle returns the other mode.
func (mode Mode) Toggle() Mode {
	if mode == Dark {
		return Light
	}
	return Dark
}

// Theme defines the color palette for the taller dashboard. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Mode identifies which palette this is, so views can render a
	// theme indicator and persist the active choice.
	Mode Mode

	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Repair state colors.
	EstadoPendiente  lipgloss.Color
	EstadoEnProceso  lipgloss.Color
	EstadoCompletada lipgloss.Color
	EstadoCancelada  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	TabActive        lipgloss.Color
	TabInactive      lipgloss.Color

	// Error and warning banners.
	ErrorForeground   lipgloss.Color
	WarningForeground lipgloss.Color

	// Filter match highlighting.
	MatchForeground lipgloss.Color

	// Low-stock accent for the spare-parts table.
	StockLow lipgloss.Color
}

// EstadoColor returns the color for a repair state. Unknown states
// render faint.
func (theme Theme) EstadoColor(estado taller.Estado) lipgloss.Color {
	switch estado {
	case taller.EstadoPendiente:
		return theme.EstadoPendiente
	case taller.EstadoEnProceso:
		return theme.EstadoEnProceso
	case taller.EstadoCompletada:
		return theme.EstadoCompletada
	case taller.EstadoCancelada:
		return theme.EstadoCancelada
	default:
		return theme.FaintText
	}
}

// DarkTheme is the dark-background palette.
var DarkTheme = Theme{
	Mode: Dark,

	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	EstadoPendiente:  lipgloss.Color("220"), // amber
	EstadoEnProceso:  lipgloss.Color("75"),  // blue
	EstadoCompletada: lipgloss.Color("114"), // green
	EstadoCancelada:  lipgloss.Color("131"), // dim red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	TabActive:        lipgloss.Color("75"),
	TabInactive:      lipgloss.Color("245"),

	ErrorForeground:   lipgloss.Color("196"),
	WarningForeground: lipgloss.Color("208"),

	MatchForeground: lipgloss.Color("220"),

	StockLow: lipgloss.Color("208"),
}

// LightTheme is the light-background palette.
var LightTheme = Theme{
	Mode: Light,

	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("254"),
	SelectedForeground: lipgloss.Color("232"),

	EstadoPendiente:  lipgloss.Color("130"), // brown/amber
	EstadoEnProceso:  lipgloss.Color("25"),  // blue
	EstadoCompletada: lipgloss.Color("28"),  // green
	EstadoCancelada:  lipgloss.Color("95"),  // dim red

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("247"),
	TabActive:        lipgloss.Color("25"),
	TabInactive:      lipgloss.Color("243"),

	ErrorForeground:   lipgloss.Color("160"),
	WarningForeground: lipgloss.Color("166"),

	MatchForeground: lipgloss.Color("130"),

	StockLow: lipgloss.Color("166"),
}

// ThemeFor returns the palette for a mode.
func ThemeFor(mode Mode) Theme {
	if mode == Light {
		return LightTheme
	}
	return DarkTheme
}

// DetectMode queries the terminal background and returns the matching
// mode. Non-terminal or undetectable backgrounds default to Dark.
func DetectMode() Mode {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// preferencePath returns the theme preference file:
// $XDG_CONFIG_HOME/taller/theme (~/.config/taller/theme).
func preferencePath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "taller", "theme"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "taller", "theme"), nil
}

// LoadPreference reads the persisted theme choice. Returns ok=false
// when no valid preference exists; the caller then falls back to
// detection.
func LoadPreference() (Mode, bool) {
	path, err := preferencePath()
	if err != nil {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	switch mode := Mode(strings.TrimSpace(string(data))); mode {
	case Light, Dark:
		return mode, true
	}
	return "", false
}

// SavePreference persists the theme choice. The preference survives
// restarts independently of the session, so logging out does not
// reset the theme.
func SavePreference(mode Mode) error {
	path, err := preferencePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := os.WriteFile(path, []byte(mode+"\n"), 0o600); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
