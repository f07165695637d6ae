package theme

import "github.com/charmbracelet/lipgloss"

// A Theme is a static set of styles selected by name. Switching themes is a
// pure presentation concern and never touches habit data.
type Theme struct {
	Name string

	Header    string
	Accent    string
	Done      string
	Warn      string
	Error     string
	Muted     string
	FormLabel string

	HeaderStyle lipgloss.Style
	PanelStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	FooterStyle lipgloss.Style
	CursorStyle lipgloss.Style
	DoneStyle   lipgloss.Style
	WarnStyle   lipgloss.Style
	MutedStyle  lipgloss.Style
	LabelStyle  lipgloss.Style
}

func build(name, header, accent, done, warn, errColor, muted, label string) Theme {
	return Theme{
		Name:      name,
		Header:    header,
		Accent:    accent,
		Done:      done,
		Warn:      warn,
		Error:     errColor,
		Muted:     muted,
		FormLabel: label,

		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(header)),
		PanelStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(muted)).Padding(0, 1),
		StatusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(done)),
		ErrorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)),
		FooterStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		CursorStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		DoneStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(done)),
		WarnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(warn)),
		MutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		LabelStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(label)),
	}
}

// Dark is the default palette.
func Dark() Theme {
	return build("dark", "#3498db", "#f0f0f0", "#4CAF50", "#ffecb3", "#e57373", "#5e5e5e", "#f0f0f0")
}

// Light suits light terminal backgrounds.
func Light() Theme {
	return build("light", "#2980b9", "#000000", "#2e7d32", "#b8860b", "#c62828", "#999999", "#333333")
}

// ByName maps a theme name to its palette; unknown names fall back to dark.
func ByName(name string) Theme {
	switch name {
	case "light":
		return Light()
	case "dark":
		return Dark()
	default:
		return Dark()
	}
}

// Toggle flips between the two palettes.
func Toggle(current Theme) Theme {
	if current.Name == "dark" {
		return Light()
	}
	return Dark()
}
