package viz

import "github.com/charmbracelet/lipgloss"

// Theme pairs a surface colormap with terminal text colours.
type Theme struct {
	Name     string
	Colormap Colormap
	Primary  lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
}

var (
	ThemeCoolwarm = Theme{
		Name:     "coolwarm",
		Colormap: Coolwarm,
		Primary:  lipgloss.Color("#3b4cc0"),
		Accent:   lipgloss.Color("#b40426"),
		Text:     lipgloss.Color("#dddddd"),
		Muted:    lipgloss.Color("#666688"),
	}

	ThemeViridis = Theme{
		Name:     "viridis",
		Colormap: Viridis,
		Primary:  lipgloss.Color("#21918c"),
		Accent:   lipgloss.Color("#fde725"),
		Text:     lipgloss.Color("#e0f0e0"),
		Muted:    lipgloss.Color("#4a6a5a"),
	}

	ThemeMono = Theme{
		Name:     "gray",
		Colormap: Gray,
		Primary:  lipgloss.Color("#ffffff"),
		Accent:   lipgloss.Color("#aaaaaa"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#777777"),
	}

	Themes = []Theme{ThemeCoolwarm, ThemeViridis, ThemeMono}
)

// GetTheme returns a theme by name, defaulting to coolwarm.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCoolwarm
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme cycles through Themes.
func nextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
