package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Body    lipgloss.Color
	Craft   lipgloss.Color
	Flame   lipgloss.Color
	Target  lipgloss.Color
	Path    lipgloss.Color
	Title   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:    "default",
		Body:    lipgloss.Color("#8a8aff"),
		Craft:   lipgloss.Color("#ffffff"),
		Flame:   lipgloss.Color("#ff8800"),
		Target:  lipgloss.Color("#00ff66"),
		Path:    lipgloss.Color("#888888"),
		Title:   lipgloss.Color("#00cccc"),
		Text:    lipgloss.Color("#dddddd"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Body:    lipgloss.Color("#00cc00"),
		Craft:   lipgloss.Color("#88ff88"),
		Flame:   lipgloss.Color("#ffff00"),
		Target:  lipgloss.Color("#00ff00"),
		Path:    lipgloss.Color("#005500"),
		Title:   lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Body:    lipgloss.Color("#cccccc"),
		Craft:   lipgloss.Color("#ffffff"),
		Flame:   lipgloss.Color("#ffaa00"),
		Target:  lipgloss.Color("#0088ff"),
		Path:    lipgloss.Color("#888888"),
		Title:   lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Body:    lipgloss.Color("#0077be"),
		Craft:   lipgloss.Color("#e0f0ff"),
		Flame:   lipgloss.Color("#ffd700"),
		Target:  lipgloss.Color("#00ff88"),
		Path:    lipgloss.Color("#4488aa"),
		Title:   lipgloss.Color("#00a8cc"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Body:    lipgloss.Color("#ff6b6b"),
		Craft:   lipgloss.Color("#fff5f5"),
		Flame:   lipgloss.Color("#feca57"),
		Target:  lipgloss.Color("#5fd068"),
		Path:    lipgloss.Color("#8b6b8c"),
		Title:   lipgloss.Color("#ff9ff3"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
		Error:   lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// palette maps canvas inks to this theme's colors.
func (t Theme) palette() [inkCount]lipgloss.Style {
	var p [inkCount]lipgloss.Style
	p[InkNone] = lipgloss.NewStyle()
	p[InkPath] = lipgloss.NewStyle().Foreground(t.Path)
	p[InkTarget] = lipgloss.NewStyle().Foreground(t.Target)
	p[InkBody] = lipgloss.NewStyle().Foreground(t.Body)
	p[InkCraft] = lipgloss.NewStyle().Foreground(t.Craft).Bold(true)
	p[InkFlame] = lipgloss.NewStyle().Foreground(t.Flame)
	return p
}
