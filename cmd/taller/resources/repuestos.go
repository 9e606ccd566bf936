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

// RepuestosCommand returns the "repuestos" command tree.
func RepuestosCommand() *cli.Command {
	return &cli.Command{
		Name:    "repuestos",
		Summary: "Manage the spare-parts inventory",
		Description: `List, inspect, and modify spare parts in stock.

Create and update take a JSON or JSONC payload file (- for stdin).
Update payloads are partial: omitted fields keep their current value.`,
		Usage: "taller repuestos <subcommand> [flags]",
		Subcommands: []*cli.Command{
			repuestosListCommand(),
			repuestosShowCommand(),
			repuestosCreateCommand(),
			repuestosUpdateCommand(),
			repuestosDeleteCommand(),
		},
	}
}

func repuestoTable(repuestos []taller.Repuesto) {
	rows := make([][]string, 0, len(repuestos))
	for _, repuesto := range repuestos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", repuesto.ID),
			repuesto.Nombre,
			repuesto.Categoria,
			fmt.Sprintf("%.2f", repuesto.Precio),
			fmt.Sprintf("%d", repuesto.Stock),
		})
	}
	printTable([]string{"ID", "NOMBRE", "CATEGORÍA", "PRECIO", "STOCK"}, rows)
}

func repuestosListCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		LowStock bool `flag:"low-stock" desc:"only show parts with 3 or fewer units in stock"`
	}

	return &cli.Command{
		Name:    "list",
		Summary: "List spare parts",
		Usage:   "taller repuestos list [flags]",
		Examples: []cli.Example{
			{
				Description: "Show parts that need restocking",
				Command:     "taller repuestos list --low-stock",
			},
		},
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

			repuestos, err := app.Service.Repuestos(ctx)
			if err != nil {
				return cli.DescribeError(err)
			}
			if params.LowStock {
				filtered := repuestos[:0]
				for _, repuesto := range repuestos {
					if repuesto.Stock <= 3 {
						filtered = append(filtered, repuesto)
					}
				}
				repuestos = filtered
			}
			if emitted, err := params.EmitJSON(repuestos); emitted {
				return err
			}
			repuestoTable(repuestos)
			return nil
		},
	}
}

func repuestosShowCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show a single spare part",
		Usage:   "taller repuestos show <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller repuestos show <id> [flags]")
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

			repuesto, err := app.Service.Repuesto(ctx, id)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(repuesto); emitted {
				return err
			}
			repuestoTable([]taller.Repuesto{repuesto})
			return nil
		},
	}
}

func repuestosCreateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "create",
		Summary: "Add a spare part from a payload file",
		Usage:   "taller repuestos create [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			var payload taller.RepuestoCreate
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

			repuesto, err := app.Service.CreateRepuesto(ctx, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(repuesto); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Repuesto %d agregado\n", repuesto.ID)
			return nil
		},
	}
}

func repuestosUpdateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "update",
		Summary: "Update a spare part from a payload file",
		Usage:   "taller repuestos update <id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Adjust stock after receiving a shipment",
				Command:     `echo '{"stock":25}' | taller repuestos update 4`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller repuestos update <id> [flags]")
			if err != nil {
				return err
			}
			var payload taller.RepuestoUpdate
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

			repuesto, err := app.Service.UpdateRepuesto(ctx, id, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(repuesto); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Repuesto %d actualizado\n", repuesto.ID)
			return nil
		},
	}
}

func repuestosDeleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a spare part",
		Usage:   "taller repuestos delete <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller repuestos delete <id> [flags]")
			if err != nil {
				return err
			}
			if err := confirmDelete("repuesto", id, params.Yes); err != nil {
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

			if err := app.Service.DeleteRepuesto(ctx, id); err != nil {
				return cli.DescribeError(err)
			}
			fmt.Fprintf(os.Stderr, "Repuesto %d eliminado\n", id)
			return nil
		},
	}
}
