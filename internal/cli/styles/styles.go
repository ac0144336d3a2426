package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	MutedStyle    lipgloss.Style // Completed task titles

	// Calendar styles
	MarkedDayStyle   lipgloss.Style // Days that have tasks
	SelectedDayStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	MutedStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(colors.Muted))

	MarkedDayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SelectedDayStyle = lipgloss.NewStyle().
		Bold(true).
		Reverse(true).
		Foreground(lipgloss.Color(colors.Accent))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))
}

// CheckMark returns the list marker for a task's completion state
func CheckMark(completed bool) string {
	if completed {
		return SuccessStyle.Render("[✓]")
	}
	return SubtitleStyle.Render("[ ]")
}

// RenderTaskTitle renders a title, muted when the task is completed
func RenderTaskTitle(task models.Task) string {
	if task.Completed {
		return MutedStyle.Render(task.Title)
	}
	return task.Title
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
