// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/mvgr-soft/taller/lib/tui"
)

// markdownParser is initialized once and reused: the configuration
// never changes and the goldmark parser is safe to share.
var (
	markdownParser     goldmark.Markdown
	markdownParserOnce sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParser = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParser
}

// renderMarkdown parses markdown and renders it as styled terminal
// text wrapped to width. Soft line breaks become spaces so
// hard-wrapped source reflows at any terminal width. Fenced code
// blocks are syntax-highlighted with chroma.
func renderMarkdown(input string, theme tui.Theme, width int) string {
	if input == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// Force the ANSI256 profile: this output is always for the
	// bubbletea renderer, and auto-detection yields uncolored output
	// in test environments with no TTY.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)

	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks a goldmark AST accumulating inline text per
// block, then word-wraps each block as a unit when it closes.
type markdownRenderer struct {
	source []byte
	theme  tui.Theme
	width  int

	output strings.Builder
	inline strings.Builder

	boldCount   int
	italicCount int

	listDepth   int
	listOrdered bool
	listNumber  int

	lipRenderer *lipgloss.Renderer
}

func (renderer *markdownRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindDocument:

	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			if renderer.listDepth == 0 {
				renderer.inline.Reset()
			}
		} else if renderer.listDepth == 0 {
			// Inside a list the enclosing item flushes, so the
			// bullet prefix lands on the first line.
			renderer.flushBlock("", renderer.theme.NormalText, false)
		}

	case ast.KindHeading:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushBlock("", renderer.theme.HeaderForeground, true)
		}

	case ast.KindFencedCodeBlock:
		if entering {
			renderer.renderFencedCode(node.(*ast.FencedCodeBlock))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			renderer.writeCodeLines(node, "")
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		// Rendered flat; the paragraph inside carries the text. A
		// prefix stack is not worth it for repair notes.

	case ast.KindList:
		if entering {
			renderer.listDepth++
			list := node.(*ast.List)
			renderer.listOrdered = list.IsOrdered()
			renderer.listNumber = list.Start
		} else {
			renderer.listDepth--
			renderer.output.WriteString("\n")
		}

	case ast.KindListItem:
		if entering {
			renderer.inline.Reset()
		} else {
			bullet := "• "
			if renderer.listOrdered {
				bullet = fmt.Sprintf("%d. ", renderer.listNumber)
				renderer.listNumber++
			}
			renderer.flushBlock(bullet, renderer.theme.NormalText, false)
		}

	case ast.KindThematicBreak:
		if entering {
			rule := renderer.newStyle().Foreground(renderer.theme.BorderColor).
				Render(strings.Repeat("─", renderer.width))
			renderer.output.WriteString(rule + "\n\n")
		}

	case ast.KindEmphasis:
		emphasis := node.(*ast.Emphasis)
		delta := 1
		if !entering {
			delta = -1
		}
		if emphasis.Level >= 2 {
			renderer.boldCount += delta
		} else {
			renderer.italicCount += delta
		}

	case ast.KindCodeSpan:
		if entering {
			var span strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					span.Write(textNode.Value(renderer.source))
				}
			}
			styled := renderer.newStyle().Foreground(renderer.theme.MatchForeground).
				Render(span.String())
			renderer.inline.WriteString(styled)
			return ast.WalkSkipChildren, nil
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			renderer.writeText(string(textNode.Value(renderer.source)))
			if textNode.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			} else if textNode.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}

	case ast.KindLink:
		if entering {
			link := node.(*ast.Link)
			renderer.inline.WriteString(renderer.newStyle().
				Foreground(renderer.theme.TabActive).Render(string(link.Destination)))
			// The child text renders after the destination; good
			// enough for the rare link in a repair note.
		}
	}

	return ast.WalkContinue, nil
}

func (renderer *markdownRenderer) writeText(value string) {
	style := renderer.newStyle().Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	renderer.inline.WriteString(style.Render(value))
}

// flushBlock wraps the accumulated inline text and appends it to the
// output with a trailing blank line (list items get a bare newline).
func (renderer *markdownRenderer) flushBlock(prefix string, color lipgloss.Color, bold bool) {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if strings.TrimSpace(ansi.Strip(content)) == "" {
		return
	}

	wrapWidth := renderer.width - len([]rune(prefix))
	wrapped := ansi.Wrap(content, wrapWidth, "")

	if bold {
		wrapped = renderer.newStyle().Foreground(color).Bold(true).Render(ansi.Strip(wrapped))
	}

	lines := strings.Split(wrapped, "\n")
	indent := strings.Repeat(" ", len([]rune(prefix)))
	for i, line := range lines {
		if i == 0 {
			renderer.output.WriteString(prefix + line + "\n")
		} else {
			renderer.output.WriteString(indent + line + "\n")
		}
	}
	if prefix == "" {
		renderer.output.WriteString("\n")
	}
}

// renderFencedCode syntax-highlights a fenced code block with chroma.
// Unknown languages fall back to faint plain text.
func (renderer *markdownRenderer) renderFencedCode(node *ast.FencedCodeBlock) {
	language := string(node.Language(renderer.source))
	renderer.writeCodeLines(node, language)
}

func (renderer *markdownRenderer) writeCodeLines(node ast.Node, language string) {
	var code strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(renderer.source))
	}

	var highlighted strings.Builder
	style := "monokai"
	if renderer.theme.Mode == tui.Light {
		style = "friendly"
	}
	if err := quick.Highlight(&highlighted, code.String(), language, "terminal256", style); err != nil {
		faint := renderer.newStyle().Foreground(renderer.theme.FaintText).Render(code.String())
		renderer.output.WriteString(indentLines(faint) + "\n")
		return
	}
	renderer.output.WriteString(indentLines(strings.TrimRight(highlighted.String(), "\n")) + "\n\n")
}

func indentLines(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
