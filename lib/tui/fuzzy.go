// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	// Configure fzf's bonus scheme once. "default" favors word
	// boundaries, which reads naturally for names and descriptions.
	algo.Init("default")
}

// FuzzyResult is one field's match against a filter pattern.
type FuzzyResult struct {
	// Score is fzf's match score; zero means no match.
	Score int

	// Positions are the rune indexes of matched characters in the
	// text, for highlighting. Sorted ascending.
	Positions []int
}

// slabSizes match fzf's own defaults for its scratch allocator.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// NewSlab returns a scratch allocator for repeated FuzzyMatch calls.
// One slab per render pass; not safe for concurrent use.
func NewSlab() *util.Slab {
	return util.MakeSlab(slab16Size, slab32Size)
}

// FuzzyMatch runs fzf's V2 fuzzy matching of pattern against text,
// case-insensitively. A nil slab is allowed for one-off calls.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	// Lowercase both sides; fzf's caseSensitive flag expects the
	// pattern already folded.
	folded := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(strings.ToLower(text)))

	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, folded, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
		// fzf reports positions in reverse order.
		for i, j := 0, len(matched.Positions)-1; i < j; i, j = i+1, j-1 {
			matched.Positions[i], matched.Positions[j] = matched.Positions[j], matched.Positions[i]
		}
	}
	return matched
}
