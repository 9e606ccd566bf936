// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/mvgr-soft/taller/taller"
)

func TestEmitJSON_SkipsWhenFlagUnset(t *testing.T) {
	output := JSONOutput{}
	emitted, err := output.EmitJSON([]taller.Cliente{})
	if err != nil {
		t.Fatalf("EmitJSON() error: %v", err)
	}
	if emitted {
		t.Error("EmitJSON() emitted without --json")
	}
}

func TestNormalizeNilSlice(t *testing.T) {
	var nilSlice []taller.Cliente
	normalized := normalizeNilSlice(nilSlice)
	value, ok := normalized.([]taller.Cliente)
	if !ok {
		t.Fatalf("normalized type = %T, want []taller.Cliente", normalized)
	}
	if value == nil {
		t.Error("nil slice not replaced with empty slice")
	}

	cliente := taller.Cliente{ID: 1}
	if got := normalizeNilSlice(cliente); got.(taller.Cliente).ID != 1 {
		t.Error("non-slice value was modified")
	}
}
