package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/nucviz/internal/figure"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	FactLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(16)

	FactValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

// RenderFacts lists a figure's derived values, styled when color is set.
func RenderFacts(fig *figure.Figure, color bool) string {
	if len(fig.Facts) == 0 {
		return ""
	}
	var b strings.Builder
	if color {
		b.WriteString(HeaderStyle.Render(fig.Name) + "\n")
	} else {
		b.WriteString(fig.Name + "\n" + strings.Repeat("-", len(fig.Name)) + "\n")
	}
	for _, f := range fig.Facts {
		if color {
			b.WriteString("  " + FactLabel.Render(f.Label) + FactValue.Render(f.Value) + "\n")
		} else {
			fmt.Fprintf(&b, "  %-16s%s\n", f.Label, f.Value)
		}
	}
	return b.String()
}
