// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/mvgr-soft/taller/cmd/taller/cli"
	"github.com/mvgr-soft/taller/taller"
)

// EquiposCommand returns the "equipos" command tree.
func EquiposCommand() *cli.Command {
	return &cli.Command{
		Name:    "equipos",
		Summary: "Manage devices registered for repair",
		Description: `List, inspect, and modify the devices customers bring in.

Create and update take a JSON or JSONC payload file (- for stdin).
Update payloads are partial: omitted fields keep their current value.`,
		Usage: "taller equipos <subcommand> [flags]",
		Subcommands: []*cli.Command{
			equiposListCommand(),
			equiposShowCommand(),
			equiposCreateCommand(),
			equiposUpdateCommand(),
			equiposDeleteCommand(),
		},
	}
}

func equipoTable(equipos []taller.Equipo) {
	rows := make([][]string, 0, len(equipos))
	for _, equipo := range equipos {
		owner := fmt.Sprintf("%d", equipo.ClienteID)
		if equipo.Cliente != nil {
			owner = equipo.Cliente.Nombre + " " + equipo.Cliente.Apellido
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", equipo.ID),
			equipo.Tipo,
			equipo.Marca,
			equipo.Modelo,
			equipo.NumeroSerie,
			owner,
		})
	}
	printTable([]string{"ID", "TIPO", "MARCA", "MODELO", "SERIE", "CLIENTE"}, rows)
}

func equiposListCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List all devices",
		Usage:   "taller equipos list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
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

			equipos, err := app.Service.Equipos(ctx)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(equipos); emitted {
				return err
			}
			equipoTable(equipos)
			return nil
		},
	}
}

func equiposShowCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show a single device",
		Usage:   "taller equipos show <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller equipos show <id> [flags]")
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

			equipo, err := app.Service.Equipo(ctx, id)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(equipo); emitted {
				return err
			}
			equipoTable([]taller.Equipo{equipo})
			return nil
		},
	}
}

func equiposCreateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "create",
		Summary: "Register a device from a payload file",
		Usage:   "taller equipos create [flags]",
		Examples: []cli.Example{
			{
				Description: "Register a device from a JSONC file",
				Command:     "taller equipos create --file equipo.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			var payload taller.EquipoCreate
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

			equipo, err := app.Service.CreateEquipo(ctx, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(equipo); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Equipo %d registrado\n", equipo.ID)
			return nil
		},
	}
}

func equiposUpdateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "update",
		Summary: "Update a device from a payload file",
		Usage:   "taller equipos update <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller equipos update <id> [flags]")
			if err != nil {
				return err
			}
			var payload taller.EquipoUpdate
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

			equipo, err := app.Service.UpdateEquipo(ctx, id, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(equipo); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Equipo %d actualizado\n", equipo.ID)
			return nil
		},
	}
}

func equiposDeleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a device",
		Usage:   "taller equipos delete <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller equipos delete <id> [flags]")
			if err != nil {
				return err
			}
			if err := confirmDelete("equipo", id, params.Yes); err != nil {
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

			if err := app.Service.DeleteEquipo(ctx, id); err != nil {
				return cli.DescribeError(err)
			}
			fmt.Fprintf(os.Stderr, "Equipo %d eliminado\n", id)
			return nil
		},
	}
}
