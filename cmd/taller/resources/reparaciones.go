// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mvgr-soft/taller/cmd/taller/cli"
	"github.com/mvgr-soft/taller/taller"
)

// ReparacionesCommand returns the "reparaciones" command tree.
func ReparacionesCommand() *cli.Command {
	return &cli.Command{
		Name:    "reparaciones",
		Summary: "Manage repair tickets",
		Description: `List, inspect, and modify repair tickets.

Valid ticket states are PENDIENTE, EN_PROCESO, COMPLETADA and
CANCELADA. Create and update take a JSON or JSONC payload file
(- for stdin). Update payloads are partial: omitted fields keep their
current value.`,
		Usage: "taller reparaciones <subcommand> [flags]",
		Subcommands: []*cli.Command{
			reparacionesListCommand(),
			reparacionesShowCommand(),
			reparacionesCreateCommand(),
			reparacionesUpdateCommand(),
			reparacionesDeleteCommand(),
		},
	}
}

func reparacionTable(reparaciones []taller.Reparacion) {
	rows := make([][]string, 0, len(reparaciones))
	for _, reparacion := range reparaciones {
		descripcion := reparacion.Descripcion
		if index := strings.IndexByte(descripcion, '\n'); index >= 0 {
			descripcion = descripcion[:index]
		}
		costo := ""
		if reparacion.Costo != 0 {
			costo = fmt.Sprintf("%.2f", reparacion.Costo)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", reparacion.ID),
			descripcion,
			string(reparacion.Estado),
			reparacion.FechaIngreso,
			reparacion.FechaSalida,
			costo,
			fmt.Sprintf("%d", reparacion.EquipoID),
		})
	}
	printTable([]string{"ID", "DESCRIPCIÓN", "ESTADO", "INGRESO", "SALIDA", "COSTO", "EQUIPO"}, rows)
}

func reparacionesListCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		Estado string `flag:"estado" desc:"only show tickets in this state (PENDIENTE, EN_PROCESO, COMPLETADA, CANCELADA)"`
	}

	return &cli.Command{
		Name:    "list",
		Summary: "List repair tickets",
		Usage:   "taller reparaciones list [flags]",
		Examples: []cli.Example{
			{
				Description: "Show only open tickets",
				Command:     "taller reparaciones list --estado EN_PROCESO",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			filter := taller.Estado(strings.ToUpper(params.Estado))
			if params.Estado != "" && !filter.Valid() {
				return fmt.Errorf("invalid estado %q: must be one of PENDIENTE, EN_PROCESO, COMPLETADA, CANCELADA", params.Estado)
			}

			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}
			if err := app.RequireSession(); err != nil {
				return err
			}

			ctx, cancel := newContext()
			defer cancel()

			reparaciones, err := app.Service.Reparaciones(ctx)
			if err != nil {
				return cli.DescribeError(err)
			}
			if params.Estado != "" {
				filtered := reparaciones[:0]
				for _, reparacion := range reparaciones {
					if reparacion.Estado == filter {
						filtered = append(filtered, reparacion)
					}
				}
				reparaciones = filtered
			}
			if emitted, err := params.EmitJSON(reparaciones); emitted {
				return err
			}
			reparacionTable(reparaciones)
			return nil
		},
	}
}

func reparacionesShowCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show a single repair ticket",
		Usage:   "taller reparaciones show <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller reparaciones show <id> [flags]")
			if err != nil {
				return err
			}
			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}
			if err := app.RequireSession(); err != nil {
				return err
			}

			ctx, cancel := newContext()
			defer cancel()

			reparacion, err := app.Service.Reparacion(ctx, id)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(reparacion); emitted {
				return err
			}
			reparacionTable([]taller.Reparacion{reparacion})
			return nil
		},
	}
}

func reparacionesCreateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "create",
		Summary: "Open a repair ticket from a payload file",
		Usage:   "taller reparaciones create [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			var payload taller.ReparacionCreate
			if err := cli.ReadPayload(params.File, &payload); err != nil {
				return err
			}

			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}
			if err := app.RequireSession(); err != nil {
				return err
			}

			ctx, cancel := newContext()
			defer cancel()

			reparacion, err := app.Service.CreateReparacion(ctx, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(reparacion); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Reparación %d creada\n", reparacion.ID)
			return nil
		},
	}
}

func reparacionesUpdateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "update",
		Summary: "Update a repair ticket from a payload file",
		Usage:   "taller reparaciones update <id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Close a ticket",
				Command:     `echo '{"estado":"COMPLETADA","fechaSalida":"2026-08-29"}' | taller reparaciones update 12`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller reparaciones update <id> [flags]")
			if err != nil {
				return err
			}
			var payload taller.ReparacionUpdate
			if err := cli.ReadPayload(params.File, &payload); err != nil {
				return err
			}

			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}
			if err := app.RequireSession(); err != nil {
				return err
			}

			ctx, cancel := newContext()
			defer cancel()

			reparacion, err := app.Service.UpdateReparacion(ctx, id, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(reparacion); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Reparación %d actualizada\n", reparacion.ID)
			return nil
		},
	}
}

func reparacionesDeleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a repair ticket",
		Usage:   "taller reparaciones delete <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller reparaciones delete <id> [flags]")
			if err != nil {
				return err
			}
			if err := confirmDelete("reparación", id, params.Yes); err != nil {
				return err
			}

			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}
			if err := app.RequireSession(); err != nil {
				return err
			}

			ctx, cancel := newContext()
			defer cancel()

			if err := app.Service.DeleteReparacion(ctx, id); err != nil {
				return cli.DescribeError(err)
			}
			fmt.Fprintf(os.Stderr, "Reparación %d eliminada\n", id)
			return nil
		},
	}
}
