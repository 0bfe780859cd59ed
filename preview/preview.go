// Package preview shows a document the way the chat client would colour it,
// either in a terminal or as acme-styles runs.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cptaffe/ansi-styles/internal/compose"
	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

// Terminal renders doc for a terminal, colouring each run with pal.
func Terminal(r *lipgloss.Renderer, doc span.Document, pal style.Palette) string {
	text := []rune(doc.String())
	var sb strings.Builder
	pos := 0
	for _, run := range compose.Runs(doc) {
		sb.WriteString(string(text[pos:run.Start]))
		render(&sb, lipStyle(r, run.Style, pal), string(text[run.Start:run.End]))
		pos = run.End
	}
	sb.WriteString(string(text[pos:]))
	return sb.String()
}

// render styles s line by line so newlines stay outside the escapes.
func render(sb *strings.Builder, st lipgloss.Style, s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line != "" {
			sb.WriteString(st.Render(line))
		}
	}
}

func lipStyle(r *lipgloss.Renderer, t style.Triple, pal style.Palette) lipgloss.Style {
	st := r.NewStyle()
	switch t.Emphasis {
	case style.Bold:
		st = st.Bold(true)
	case style.Underline:
		st = st.Underline(true)
	}
	if t.Foreground != style.None {
		st = st.Foreground(lipgloss.Color(pal.Color(t.Foreground)))
	}
	if t.Background != style.None {
		st = st.Background(lipgloss.Color(pal.Color(t.Background)))
	}
	return st
}

// Acme converts doc into acme-styles palette entries and runs.  One entry
// is produced per distinct triple, in order of first use.
func Acme(doc span.Document, pal style.Palette) ([]style.PaletteEntry, []style.StyleRun) {
	var (
		entries []style.PaletteEntry
		runs    []style.StyleRun
		seen    = map[style.Triple]bool{}
	)
	for _, run := range compose.Runs(doc) {
		e := pal.Entry(run.Style)
		if !seen[run.Style] {
			seen[run.Style] = true
			entries = append(entries, e)
		}
		runs = append(runs, style.StyleRun{Name: e.Name, Start: run.Start, End: run.End})
	}
	return entries, runs
}
