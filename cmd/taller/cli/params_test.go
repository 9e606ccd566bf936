// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_AllTypes(t *testing.T) {
	var params struct {
		Name     string        `flag:"name,n" desc:"a name"`
		Verbose  bool          `flag:"verbose,v"`
		Count    int           `flag:"count" default:"3"`
		Ratio    float64       `flag:"ratio" default:"0.5"`
		Timeout  time.Duration `flag:"timeout" default:"30s"`
		Tags     []string      `flag:"tag"`
		Untagged string
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&params, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	args := []string{
		"-n", "ana",
		"--verbose",
		"--count", "7",
		"--ratio", "1.25",
		"--timeout", "2m",
		"--tag", "a", "--tag", "b",
	}
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if params.Name != "ana" {
		t.Errorf("Name = %q, want %q", params.Name, "ana")
	}
	if !params.Verbose {
		t.Error("Verbose not set")
	}
	if params.Count != 7 {
		t.Errorf("Count = %d, want 7", params.Count)
	}
	if params.Ratio != 1.25 {
		t.Errorf("Ratio = %v, want 1.25", params.Ratio)
	}
	if params.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", params.Timeout)
	}
	if len(params.Tags) != 2 || params.Tags[0] != "a" || params.Tags[1] != "b" {
		t.Errorf("Tags = %v, want [a b]", params.Tags)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	var params struct {
		Count   int           `flag:"count" default:"3"`
		Timeout time.Duration `flag:"timeout" default:"30s"`
		File    string        `flag:"file" default:"-"`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&params, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if params.Count != 3 {
		t.Errorf("Count default = %d, want 3", params.Count)
	}
	if params.Timeout != 30*time.Second {
		t.Errorf("Timeout default = %v, want 30s", params.Timeout)
	}
	if params.File != "-" {
		t.Errorf("File default = %q, want -", params.File)
	}
}

func TestBindFlags_EmbeddedJSONOutput(t *testing.T) {
	var params struct {
		JSONOutput
		File string `flag:"file,f" default:"-"`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&params, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}
	if err := flagSet.Parse([]string{"--json"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if !params.OutputJSON {
		t.Error("embedded --json flag not bound")
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	var params struct{}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(params, flagSet)
	if err == nil {
		t.Fatal("BindFlags() accepted a non-pointer")
	}
	if !strings.Contains(err.Error(), "pointer to a struct") {
		t.Errorf("error = %q, want pointer-to-struct complaint", err)
	}
}

func TestBindFlags_RejectsUnsupportedType(t *testing.T) {
	var params struct {
		Bad map[string]string `flag:"bad"`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&params, flagSet)
	if err == nil {
		t.Fatal("BindFlags() accepted a map field")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %q, want unsupported-type complaint", err)
	}
}
