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

// ClientesCommand returns the "clientes" command tree.
func ClientesCommand() *cli.Command {
	return &cli.Command{
		Name:    "clientes",
		Summary: "Manage customer records",
		Description: `List, inspect, and modify the workshop's customers.

Create and update take a JSON or JSONC payload file (- for stdin).
Update payloads are partial: omitted fields keep their current value.`,
		Usage: "taller clientes <subcommand> [flags]",
		Subcommands: []*cli.Command{
			clientesListCommand(),
			clientesShowCommand(),
			clientesCreateCommand(),
			clientesUpdateCommand(),
			clientesDeleteCommand(),
		},
	}
}

func clienteTable(clientes []taller.Cliente) {
	rows := make([][]string, 0, len(clientes))
	for _, cliente := range clientes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", cliente.ID),
			cliente.Nombre + " " + cliente.Apellido,
			cliente.Email,
			cliente.Telefono,
			cliente.Direccion,
		})
	}
	printTable([]string{"ID", "NOMBRE", "EMAIL", "TELÉFONO", "DIRECCIÓN"}, rows)
}

func clientesListCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List all customers",
		Usage:   "taller clientes list [flags]",
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

			clientes, err := app.Service.Clientes(ctx)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(clientes); emitted {
				return err
			}
			clienteTable(clientes)
			return nil
		},
	}
}

func clientesShowCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show a single customer",
		Usage:   "taller clientes show <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller clientes show <id> [flags]")
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

			cliente, err := app.Service.Cliente(ctx, id)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(cliente); emitted {
				return err
			}
			clienteTable([]taller.Cliente{cliente})
			return nil
		},
	}
}

func clientesCreateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a customer from a payload file",
		Usage:   "taller clientes create [flags]",
		Examples: []cli.Example{
			{
				Description: "Create a customer from stdin",
				Command:     `echo '{"nombre":"Ana","apellido":"Gómez","email":"ana@example.com","telefono":"555-0101"}' | taller clientes create`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			var payload taller.ClienteCreate
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

			cliente, err := app.Service.CreateCliente(ctx, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(cliente); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Cliente %d creado\n", cliente.ID)
			return nil
		},
	}
}

func clientesUpdateCommand() *cli.Command {
	var params payloadParams

	return &cli.Command{
		Name:    "update",
		Summary: "Update a customer from a payload file",
		Usage:   "taller clientes update <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller clientes update <id> [flags]")
			if err != nil {
				return err
			}
			var payload taller.ClienteUpdate
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

			cliente, err := app.Service.UpdateCliente(ctx, id, payload)
			if err != nil {
				return cli.DescribeError(err)
			}
			if emitted, err := params.EmitJSON(cliente); emitted {
				return err
			}
			fmt.Fprintf(os.Stderr, "Cliente %d actualizado\n", cliente.ID)
			return nil
		},
	}
}

func clientesDeleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a customer",
		Usage:   "taller clientes delete <id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			id, err := parseID(args, "taller clientes delete <id> [flags]")
			if err != nil {
				return err
			}
			if err := confirmDelete("cliente", id, params.Yes); err != nil {
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

			if err := app.Service.DeleteCliente(ctx, id); err != nil {
				return cli.DescribeError(err)
			}
			fmt.Fprintf(os.Stderr, "Cliente %d eliminado\n", id)
			return nil
		},
	}
}
