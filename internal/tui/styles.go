package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/listo/internal/config"
)

// styles are the TUI styles derived from the configured color scheme
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Filter tabs
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Task rows
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style // Completed task titles
	CheckDone lipgloss.Style
	CheckOpen lipgloss.Style
	Date      lipgloss.Style

	// Footer
	Prompt      lipgloss.Style
	ConfirmBox  lipgloss.Style
	InfoBanner  lipgloss.Style
	ErrorBanner lipgloss.Style
	HelpBox     lipgloss.Style
}

func newStyles(colors config.ColorScheme) styles {
	accent := lipgloss.Color(colors.Accent)
	subtle := lipgloss.Color(colors.Subtle)

	tab := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(subtle)

	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtitle: lipgloss.NewStyle().
			Foreground(subtle),

		Tab: tab,
		ActiveTab: tab.
			Bold(true).
			Underline(true).
			Foreground(accent),

		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Selected: lipgloss.NewStyle().
			Bold(true),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(colors.Muted)),
		CheckDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Success)),
		CheckOpen: lipgloss.NewStyle().
			Foreground(subtle),
		Date: lipgloss.NewStyle().
			Foreground(subtle),

		Prompt: lipgloss.NewStyle().
			Foreground(accent),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Error)).
			Padding(0, 1),
		InfoBanner: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Error)).
			Bold(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
	}
}
