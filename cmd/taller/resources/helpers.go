// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mvgr-soft/taller/cmd/taller/cli"
)

// commandTimeout bounds every backend call issued by a CLI command.
const commandTimeout = 30 * time.Second

// newContext returns the per-command context.
func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// parseID parses the single positional <id> argument.
func parseID(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("exactly one <id> argument is required\n\nUsage: %s", usage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", args[0])
	}
	return id, nil
}

// printTable writes rows with aligned columns to stdout.
func printTable(headers []string, rows [][]string) {
	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(writer, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	writer.Flush()
}

// confirmDelete asks for interactive confirmation unless --yes was
// given. Non-interactive stdin without --yes refuses, so scripts must
// be explicit about destructive operations.
func confirmDelete(label string, id int, skip bool) error {
	if skip {
		return nil
	}
	if fileInfo, err := os.Stdin.Stat(); err != nil || fileInfo.Mode()&os.ModeCharDevice == 0 {
		return fmt.Errorf("refusing to delete without confirmation; pass --yes in scripts")
	}
	fmt.Fprintf(os.Stderr, "¿Eliminar %s %d? [y/N] ", label, id)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" && answer != "s" && answer != "si" {
		return fmt.Errorf("aborted")
	}
	return nil
}

// deleteParams is shared by every delete subcommand.
type deleteParams struct {
	Yes bool `flag:"yes,y" desc:"skip the confirmation prompt"`
}

// listParams is shared by every list subcommand.
type listParams struct {
	cli.JSONOutput
}

// showParams is shared by every show subcommand.
type showParams struct {
	cli.JSONOutput
}

// payloadParams is shared by create and update subcommands.
type payloadParams struct {
	cli.JSONOutput
	File string `flag:"file,f" desc:"JSON or JSONC payload file, or - for stdin" default:"-"`
}
