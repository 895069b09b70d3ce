package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nkaratas/taskpad/internal/model"
)

// Theme bundles the palette + symbols the renderers pull from `current`.
// Two palettes ship: dark (default) and light.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Pending  lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Tag      lipgloss.Style
	Border   lipgloss.Style

	prioLow, prioMedium, prioHigh lipgloss.Style

	BoxChecked, BoxUnchecked string
}

var current = darkTheme()

func darkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		prioLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		prioMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		prioHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		BoxChecked:   "☑",
		BoxUnchecked: "☐",
	}
}

func lightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Padding(0, 1),
		prioLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		prioMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		prioHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		BoxChecked:   "[x]",
		BoxUnchecked: "[ ]",
	}
}

// Set selects a palette by name. Unknown names fall back to dark.
func Set(name string) {
	switch strings.ToLower(name) {
	case "light":
		current = lightTheme()
	default:
		current = darkTheme()
	}
}

// Toggle flips between dark and light.
func Toggle() {
	if current.Name == "dark" {
		current = lightTheme()
	} else {
		current = darkTheme()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// PriorityStyle returns the badge style for a priority level.
func (t Theme) PriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return t.prioHigh
	case model.PriorityMedium:
		return t.prioMedium
	default:
		return t.prioLow
	}
}
