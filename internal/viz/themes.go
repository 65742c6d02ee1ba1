package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

// Theme defines the colour scheme for bars and chrome.
type Theme struct {
	Name   string
	Bar    lipgloss.Color
	Red    lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Bar:    lipgloss.Color("#7f8c8d"),
		Red:    lipgloss.Color("#e74c3c"),
		Green:  lipgloss.Color("#2ecc71"),
		Yellow: lipgloss.Color("#f1c40f"),
		Text:   lipgloss.Color("#ecf0f1"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#00ffff"),
		Border: lipgloss.Color("#444466"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Bar:    lipgloss.Color("#00ffff"),
		Red:    lipgloss.Color("#ff0055"),
		Green:  lipgloss.Color("#00ff00"),
		Yellow: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ff00ff"),
		Border: lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Bar:    lipgloss.Color("#00aa00"),
		Red:    lipgloss.Color("#ff5555"),
		Green:  lipgloss.Color("#88ff88"),
		Yellow: lipgloss.Color("#ffff55"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Border: lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Bar:    lipgloss.Color("#0077be"),
		Red:    lipgloss.Color("#ff4444"),
		Green:  lipgloss.Color("#00ff88"),
		Yellow: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Bar:    lipgloss.Color("#8b6b8c"),
		Red:    lipgloss.Color("#ff4757"),
		Green:  lipgloss.Color("#5fd068"),
		Yellow: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
		Border: lipgloss.Color("#ff6b6b"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, defaulting to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Tone maps a highlight tone to its colour.
func (t Theme) Tone(tone trace.Tone) lipgloss.Color {
	switch tone {
	case trace.ToneRed:
		return t.Red
	case trace.ToneGreen:
		return t.Green
	case trace.ToneYellow:
		return t.Yellow
	default:
		return t.Bar
	}
}
