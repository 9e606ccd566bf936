// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/mvgr-soft/taller/lib/tui"
)

func plainRender(t *testing.T, input string, width int) string {
	t.Helper()
	return ansi.Strip(renderMarkdown(input, tui.DarkTheme, width))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := renderMarkdown("", tui.DarkTheme, 40); got != "" {
		t.Errorf("empty input should render empty, got %q", got)
	}
}

func TestRenderMarkdownParagraphReflow(t *testing.T) {
	// Hard-wrapped source: the soft line break becomes a space and
	// the paragraph rewraps at the render width.
	input := "El equipo no\nenciende tras el cambio"
	got := plainRender(t, input, 80)
	if !strings.Contains(got, "El equipo no enciende tras el cambio") {
		t.Errorf("soft break should reflow into one line, got %q", got)
	}
}

func TestRenderMarkdownHeading(t *testing.T) {
	got := plainRender(t, "# Diagnóstico\n\nTexto.", 40)
	if !strings.Contains(got, "Diagnóstico") || !strings.Contains(got, "Texto.") {
		t.Errorf("missing heading or body: %q", got)
	}
}

func TestRenderMarkdownBulletList(t *testing.T) {
	got := plainRender(t, "- pantalla\n- batería\n", 40)
	if !strings.Contains(got, "• pantalla") || !strings.Contains(got, "• batería") {
		t.Errorf("expected bulleted items, got %q", got)
	}
}

func TestRenderMarkdownOrderedList(t *testing.T) {
	got := plainRender(t, "1. abrir\n2. limpiar\n", 40)
	if !strings.Contains(got, "1. abrir") || !strings.Contains(got, "2. limpiar") {
		t.Errorf("expected numbered items, got %q", got)
	}
}

func TestRenderMarkdownFencedCode(t *testing.T) {
	got := plainRender(t, "```\nsudo dmesg\n```\n", 40)
	if !strings.Contains(got, "sudo dmesg") {
		t.Errorf("code block content missing: %q", got)
	}
}

func TestRenderMarkdownWrapsToWidth(t *testing.T) {
	input := strings.Repeat("palabra ", 30)
	got := plainRender(t, input, 30)
	for _, line := range strings.Split(got, "\n") {
		if ansi.StringWidth(line) > 30 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}
