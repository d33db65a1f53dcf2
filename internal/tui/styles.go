package tui

import (
	"github.com/charmbracelet/lipgloss"

	"twopane/internal/config"
)

// Styles holds the lipgloss styles the views render with, derived from the
// configured theme colors.
type Styles struct {
	ActivePane   lipgloss.Style
	InactivePane lipgloss.Style
	Title        lipgloss.Style
	Cursor       lipgloss.Style
	Directory    lipgloss.Style
	Disabled     lipgloss.Style
	Tag          lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
}

// NewStyles builds the style set from the theme section of cfg.
func NewStyles(cfg *config.Config) Styles {
	accent := lipgloss.Color(cfg.Theme.Accent)
	border := lipgloss.Color(cfg.Theme.Border)

	return Styles{
		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		InactivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent),
		Directory: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#81A1C1")).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Disabled)).
			Strikethrough(true),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Tag)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")),
	}
}
