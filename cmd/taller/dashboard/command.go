// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/mvgr-soft/taller/cmd/taller/cli"
	"github.com/mvgr-soft/taller/lib/tallerui"
	"github.com/mvgr-soft/taller/lib/tui"
)

// dashboardParams holds the flags for the dashboard command.
type dashboardParams struct {
	Theme      string `flag:"theme" desc:"color theme: light or dark (default: saved preference, then terminal detection)"`
	NoSnapshot bool   `flag:"no-snapshot" desc:"skip the startup snapshot and wait for live data"`
}

// Command returns the "dashboard" command.
func Command() *cli.Command {
	var params dashboardParams

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Open the full-screen terminal dashboard",
		Description: `Open the interactive dashboard: one tab per resource, fuzzy
filtering, a detail pane, and inline record deletion.

The dashboard starts from the last saved data snapshot, so something
is on screen immediately while live data loads. Without a session it
opens on the login screen.

Keys: j/k move, tab or 1-4 switch resource, / filter, r refresh,
x delete, t toggle theme, q quit.`,
		Usage: "taller dashboard [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the dashboard with the light theme",
				Command:     "taller dashboard --theme light",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("dashboard", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return run(params)
		},
	}
}

func run(params dashboardParams) error {
	// The alternate screen owns the terminal, so logs are dropped
	// rather than smeared across the UI.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := tallerui.NewRouter()
	app, err := cli.NewAppWith(logger, router)
	if err != nil {
		return err
	}

	mode, err := resolveMode(params.Theme, app.Config.Theme)
	if err != nil {
		return err
	}

	snapshotPath := ""
	if !params.NoSnapshot && !app.Config.Snapshot.Disabled {
		snapshotPath, err = app.Config.SnapshotPath()
		if err != nil {
			return err
		}
	}

	model := tallerui.NewModel(tallerui.Options{
		Client:       app.Client,
		Service:      app.Service,
		Store:        app.Store,
		Router:       router,
		Theme:        tui.ThemeFor(mode),
		SnapshotPath: snapshotPath,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	router.SetProgram(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// resolveMode picks the theme mode: the --theme flag wins, then the
// config file, then the saved preference, then terminal detection.
func resolveMode(flagValue, configValue string) (tui.Mode, error) {
	switch flagValue {
	case "":
	case "light", "dark":
		return tui.Mode(flagValue), nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be \"light\" or \"dark\"", flagValue)
	}
	if configValue != "" {
		return tui.Mode(configValue), nil
	}
	if mode, ok := tui.LoadPreference(); ok {
		return mode, nil
	}
	return tui.DetectMode(), nil
}
