package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cptaffe/ansi-styles/style"
)

// Swatches lists every code by channel with a rendered sample, its label
// and its preview colour.
func Swatches(r *lipgloss.Renderer, pal style.Palette, label func(style.Code) string) string {
	code := r.NewStyle().Width(4).Align(lipgloss.Right)
	name := r.NewStyle().Width(18)
	var sb strings.Builder
	for _, ch := range []style.Channel{style.Emphasis, style.Foreground, style.Background} {
		fmt.Fprintf(&sb, "%s\n", ch)
		for _, c := range style.Codes(ch) {
			sample := lipStyle(r, style.Triple{}.With(ch, c), pal).Render(" Sample ")
			fmt.Fprintf(&sb, "%s  %s  %s%s\n",
				code.Render(fmt.Sprint(int(c))), sample, name.Render(label(c)), pal.Color(c))
		}
	}
	return sb.String()
}
