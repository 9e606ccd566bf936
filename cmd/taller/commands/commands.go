// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the taller command tree.
package commands

import (
	"github.com/mvgr-soft/taller/cmd/taller/auth"
	"github.com/mvgr-soft/taller/cmd/taller/cli"
	"github.com/mvgr-soft/taller/cmd/taller/dashboard"
	"github.com/mvgr-soft/taller/cmd/taller/resources"
)

// Root returns the root "taller" command with all subcommands wired.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "taller",
		Summary: "Administration client for the device-repair workshop",
		Description: `taller is the admin client for the workshop backend: customers,
devices, repair tickets, and spare parts.

Start with "taller login <usuario>", then either open the interactive
dashboard or drive individual resources from scripts. Resource list
and show subcommands take --json for machine-readable output.

The backend URL defaults to http://localhost:8080/api and can be
overridden with TALLER_API_URL or the config file
(~/.config/taller/config.yaml).`,
		Usage: "taller <command> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in and open the dashboard",
				Command:     "taller login admin && taller dashboard",
			},
			{
				Description: "List open repair tickets as JSON",
				Command:     "taller reparaciones list --estado EN_PROCESO --json",
			},
		},
		Subcommands: []*cli.Command{
			auth.LoginCommand(),
			auth.LogoutCommand(),
			auth.WhoAmICommand(),
			dashboard.Command(),
			resources.ClientesCommand(),
			resources.EquiposCommand(),
			resources.ReparacionesCommand(),
			resources.RepuestosCommand(),
		},
	}
}
