// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mvgr-soft/taller/lib/tui"
)

// columnGap separates table columns.
const columnGap = 2

// renderTable renders the rows of the active tab as a fixed-layout
// table. cursor is the selected index into rows; scrollOffset is the
// first visible row. height is the number of body lines available
// (the header consumes one extra line).
func renderTable(tab Tab, rows []FilteredRow, theme tui.Theme,
	width, height, cursor, scrollOffset int) string {

	headers := tabHeaders(tab)
	widths := columnWidths(headers, rows, width)

	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	builder.WriteString(headerStyle.Render(renderCells(headers, widths)))
	builder.WriteString("\n")

	if len(rows) == 0 {
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).
			Render("  (sin registros)"))
		return builder.String()
	}

	end := scrollOffset + height
	if end > len(rows) {
		end = len(rows)
	}
	for index := scrollOffset; index < end; index++ {
		row := rows[index].Row
		line := renderCells(row.Cells, widths)

		style := lipgloss.NewStyle().Foreground(theme.NormalText)
		switch {
		case index == cursor:
			style = style.
				Background(theme.SelectedBackground).
				Foreground(theme.SelectedForeground)
		case row.Estado != "":
			style = style.Foreground(theme.EstadoColor(row.Estado))
		case row.LowStock:
			style = style.Foreground(theme.StockLow)
		}

		builder.WriteString(style.Render(line))
		if index < end-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// columnWidths distributes the available width over the columns. Each
// column gets at least its header width; the widest content column
// (usually the name or description) absorbs the remainder.
func columnWidths(headers []string, rows []FilteredRow, total int) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = ansi.StringWidth(header)
	}
	for _, filtered := range rows {
		for i, cell := range filtered.Row.Cells {
			if i >= len(widths) {
				break
			}
			if cellWidth := ansi.StringWidth(cell); cellWidth > widths[i] {
				widths[i] = cellWidth
			}
		}
	}

	// Shrink the widest column until the table fits.
	available := total - columnGap*(len(widths)-1)
	for {
		sum := 0
		widest := 0
		for i, width := range widths {
			sum += width
			if width > widths[widest] {
				widest = i
			}
		}
		if sum <= available || widths[widest] <= 8 {
			return widths
		}
		widths[widest]--
	}
}

// renderCells lays out one row's cells at the given widths, truncating
// with an ellipsis when a cell overflows its column.
func renderCells(cells []string, widths []int) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		width := widths[i]
		truncated := ansi.Truncate(cell, width, "…")
		padding := width - ansi.StringWidth(truncated)
		if padding < 0 {
			padding = 0
		}
		parts = append(parts, truncated+strings.Repeat(" ", padding))
	}
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}
