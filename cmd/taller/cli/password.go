// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPassword reads a password for the login command. If
// passwordFile is empty or "-", prompts interactively on the terminal
// with echo disabled. Otherwise, reads from the file path, stripping
// trailing newlines (common with echo/printf pipelines).
func ReadPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", passwordFile, err)
		}
		for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
			data = data[:len(data)-1]
		}
		if len(data) == 0 {
			return "", fmt.Errorf("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return string(data), nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", fmt.Errorf("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Contraseña: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(passwordBytes) == 0 {
		return "", fmt.Errorf("empty password")
	}
	return string(passwordBytes), nil
}
