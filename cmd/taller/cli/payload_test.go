// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mvgr-soft/taller/taller"
)

func writePayloadFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.jsonc")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write payload file: %v", err)
	}
	return path
}

func TestReadPayload_PlainJSON(t *testing.T) {
	path := writePayloadFile(t, `{
		"nombre": "Ana",
		"apellido": "Gómez",
		"email": "ana@example.com",
		"telefono": "555-0101"
	}`)

	var payload taller.ClienteCreate
	if err := ReadPayload(path, &payload); err != nil {
		t.Fatalf("ReadPayload() error: %v", err)
	}
	if payload.Nombre != "Ana" || payload.Email != "ana@example.com" {
		t.Errorf("payload = %+v, want Ana/ana@example.com", payload)
	}
}

func TestReadPayload_JSONCCommentsAndTrailingCommas(t *testing.T) {
	path := writePayloadFile(t, `{
		// kept as an annotated template
		"nombre": "Luis",
		"apellido": "Pérez",
		"email": "luis@example.com",
		"telefono": "555-0102", /* trailing comma below */
	}`)

	var payload taller.ClienteCreate
	if err := ReadPayload(path, &payload); err != nil {
		t.Fatalf("ReadPayload() error: %v", err)
	}
	if payload.Nombre != "Luis" {
		t.Errorf("Nombre = %q, want Luis", payload.Nombre)
	}
}

func TestReadPayload_RejectsUnknownFields(t *testing.T) {
	path := writePayloadFile(t, `{"nombre": "Ana", "telefno": "555-0101"}`)

	var payload taller.ClienteCreate
	err := ReadPayload(path, &payload)
	if err == nil {
		t.Fatal("ReadPayload() accepted a payload with a typoed field")
	}
	if !strings.Contains(err.Error(), "telefno") {
		t.Errorf("error = %q, want mention of the unknown field", err)
	}
}

func TestReadPayload_PartialUpdateLeavesNilFields(t *testing.T) {
	path := writePayloadFile(t, `{"stock": 25}`)

	var payload taller.RepuestoUpdate
	if err := ReadPayload(path, &payload); err != nil {
		t.Fatalf("ReadPayload() error: %v", err)
	}
	if payload.Stock == nil || *payload.Stock != 25 {
		t.Errorf("Stock = %v, want 25", payload.Stock)
	}
	if payload.Nombre != nil || payload.Precio != nil {
		t.Error("omitted fields decoded as non-nil")
	}
}

func TestReadPayload_MissingFile(t *testing.T) {
	var payload taller.ClienteCreate
	err := ReadPayload(filepath.Join(t.TempDir(), "absent.json"), &payload)
	if err == nil {
		t.Fatal("ReadPayload() succeeded on a missing file")
	}
}
