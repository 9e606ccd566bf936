// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"sort"

	"github.com/mvgr-soft/taller/lib/tui"
)

// FilterModel holds the fuzzy filter state. The filter composes with
// tabs: the tab chooses the resource, and the filter narrows it
// client-side without round-tripping to the backend.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true while the filter input has keyboard focus (the
	// user pressed / to start typing).
	Active bool
}

// Clear resets the query and deactivates the input.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// FilteredRow pairs a row with its match metadata for highlighting.
type FilteredRow struct {
	Row Row

	// Score orders the results; zero when the filter is empty.
	Score int

	// Positions are matched rune indexes within Row.SearchText. The
	// list renderer highlights the corresponding cells only roughly,
	// by cell text, so the positions are mostly useful for scoring
	// and tests.
	Positions []int
}

// Apply runs the fuzzy filter over rows. An empty query returns all
// rows unscored, in backend order. A non-empty query returns only
// matching rows, best score first; ties keep backend order.
func (filter *FilterModel) Apply(rows []Row) []FilteredRow {
	if filter.Input == "" {
		results := make([]FilteredRow, len(rows))
		for i, row := range rows {
			results[i] = FilteredRow{Row: row}
		}
		return results
	}

	pattern := []rune(filter.Input)
	slab := tui.NewSlab()

	var results []FilteredRow
	for _, row := range rows {
		match := tui.FuzzyMatch(row.SearchText, pattern, slab)
		if match.Score <= 0 {
			continue
		}
		results = append(results, FilteredRow{
			Row:       row,
			Score:     match.Score,
			Positions: match.Positions,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
