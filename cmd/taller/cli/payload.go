// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
)

// ReadPayload reads a JSON payload for create/update commands into
// target. path "-" reads stdin. Files may use JSONC (comments and
// trailing commas) so payloads can be kept as annotated templates;
// the comments are stripped before decoding.
//
// Decoding is strict: unknown fields are rejected, catching typos
// like "telefno" before they silently drop a field server-side.
func ReadPayload(path string, target any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse payload %s: %w", path, err)
	}
	return nil
}
