// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/mvgr-soft/taller/cmd/taller/cli"
	"github.com/mvgr-soft/taller/session"
)

// loginParams holds the flags for the login command.
type loginParams struct {
	PasswordFile string `flag:"password-file" desc:"path to file containing the password, or - to prompt interactively (default: prompt)"`
}

// LoginCommand returns the "login" command.
func LoginCommand() *cli.Command {
	var params loginParams

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate against the workshop backend",
		Description: `Log in to the workshop backend and save the session locally.

After login, every command uses the saved session transparently — no
flags needed. The session file is stored at
~/.config/taller/session.json (or $TALLER_SESSION_FILE if set) with
mode 0600, since it contains the access token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "taller login <usuario> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "taller login admin",
			},
			{
				Description: "Log in with password from file",
				Command:     "taller login admin --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("login", &params)
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("usuario is required\n\nUsage: taller login <usuario> [flags]")
			}
			username := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			password, err := cli.ReadPassword(params.PasswordFile)
			if err != nil {
				return err
			}

			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			response, err := app.Client.Login(ctx, username, password)
			if err != nil {
				return cli.DescribeError(err)
			}

			app.Store.Login(response.Token, response.Username)

			fmt.Fprintf(os.Stderr, "Sesión iniciada como %s\n", response.Username)
			fmt.Fprintf(os.Stderr, "Sesión guardada en %s\n", session.FilePath())
			return nil
		},
	}
}

// LogoutCommand returns the "logout" command.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Discard the saved session",
		Description: `Log out: clear the in-memory session and remove the session file.

Logging out is purely local — the token is forgotten, not revoked
server-side.`,
		Usage: "taller logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}

			if !app.Store.Authenticated() {
				fmt.Fprintln(os.Stderr, "No hay sesión activa")
				return nil
			}

			app.Store.Logout()
			fmt.Fprintln(os.Stderr, "Sesión cerrada")
			return nil
		},
	}
}

// whoamiParams holds the flags for the whoami command.
type whoamiParams struct {
	cli.JSONOutput
}

// whoamiResult is the JSON shape of whoami output.
type whoamiResult struct {
	User          string `json:"user"`
	Authenticated bool   `json:"authenticated"`
	SessionFile   string `json:"sessionFile"`
}

// WhoAmICommand returns the "whoami" command.
func WhoAmICommand() *cli.Command {
	var params whoamiParams

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the current session",
		Usage:   "taller whoami [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("whoami", &params)
		},
		Run: func(args []string) error {
			app, err := cli.NewApp(nil)
			if err != nil {
				return err
			}

			current := app.Store.Current()
			result := whoamiResult{
				User:          current.User,
				Authenticated: app.Store.Authenticated(),
				SessionFile:   session.FilePath(),
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			if !result.Authenticated {
				fmt.Println("No hay sesión activa")
				return &cli.ExitError{Code: 1}
			}
			fmt.Printf("%s (sesión en %s)\n", result.User, result.SessionFile)
			return nil
		},
	}
}
