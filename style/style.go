// Package style defines the three style channels, their code table and the
// colours each code previews as.
//
// PaletteEntry and StyleRun are the acme-styles compositor wire types; the
// acme preview derives one PaletteEntry per distinct Triple and serialises it
// with Format.
package style

import (
	"fmt"
	"strings"
)

// PaletteEntry is a named visual style definition.
type PaletteEntry struct {
	Name      string // e.g. "ansi_1_31_45"
	FG        string // "#rrggbb", or ""
	BG        string // "#rrggbb", or ""
	Bold      bool
	Underline bool
}

// StyleRun is a named style span.  Start and End are rune offsets; End is
// exclusive.
type StyleRun struct {
	Name  string
	Start int
	End   int // exclusive
}

// Format serialises palette entries and style runs into the acme-styles wire
// format.
func Format(palette []PaletteEntry, runs []StyleRun) string {
	var sb strings.Builder
	for _, e := range palette {
		writePaletteLine(&sb, e)
	}
	for _, r := range runs {
		fmt.Fprintf(&sb, "%d %d %s\n", r.Start, r.End-r.Start, r.Name)
	}
	return sb.String()
}

func writePaletteLine(sb *strings.Builder, e PaletteEntry) {
	fmt.Fprintf(sb, ":%s", e.Name)
	if e.FG != "" {
		fmt.Fprintf(sb, " fg=%s", e.FG)
	}
	if e.BG != "" {
		fmt.Fprintf(sb, " bg=%s", e.BG)
	}
	if e.Bold {
		sb.WriteString(" bold")
	}
	if e.Underline {
		sb.WriteString(" underline")
	}
	sb.WriteByte('\n')
}

// Palette maps colour codes to the "#rrggbb" they preview as.
type Palette map[Code]string

// DefaultPalette returns the built-in preview colours.
func DefaultPalette() Palette {
	p := make(Palette, len(table))
	for c, info := range table {
		if info.Color != "" {
			p[c] = info.Color
		}
	}
	return p
}

// Color returns the preview colour of c, falling back to the built-in table.
func (p Palette) Color(c Code) string {
	if col, ok := p[c]; ok {
		return col
	}
	return table[c].Color
}

// Entry returns the palette entry previewing t.  Entries for equal triples
// share a name.
func (p Palette) Entry(t Triple) PaletteEntry {
	e := PaletteEntry{Name: "ansi_" + strings.ReplaceAll(strings.ReplaceAll(t.String(), ";", "_"), "-", "x")}
	switch t.Emphasis {
	case Bold:
		e.Bold = true
	case Underline:
		e.Underline = true
	}
	if t.Foreground != None {
		e.FG = p.Color(t.Foreground)
	}
	if t.Background != None {
		e.BG = p.Color(t.Background)
	}
	return e
}
