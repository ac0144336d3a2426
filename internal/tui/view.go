package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/models"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Listo"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(m.tasks.Counts().String()))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.uiState.Mode() == state.HelpMode {
		b.WriteString(m.styles.HelpBox.Render(m.renderFullHelp()))
	} else {
		b.WriteString(m.renderTasks())
		b.WriteString("\n")
		if footer := m.renderFooter(); footer != "" {
			b.WriteString("\n")
			b.WriteString(footer)
		}
	}

	if n, ok := m.notificationState.Current(); ok {
		b.WriteString("\n")
		b.WriteString(m.renderNotification(n))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(models.TaskFilters))
	for _, f := range models.TaskFilters {
		if f == m.uiState.Filter() {
			tabs = append(tabs, m.styles.ActiveTab.Render(f.Label()))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(f.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTasks renders the visible rows, scrolled so the selection stays on screen
func (m Model) renderTasks() string {
	visible := m.visibleTasks()
	if len(visible) == 0 {
		return m.styles.Subtitle.Render(m.uiState.Filter().EmptyMessage())
	}

	start, end := 0, len(visible)
	if h := m.uiState.ListHeight(); h > 0 && len(visible) > h {
		start = max(0, m.uiState.Selected()-h+1)
		end = min(len(visible), start+h)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderTaskRow(visible[i], i == m.uiState.Selected()))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderTaskRow(t models.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	check := m.styles.CheckOpen.Render("[ ]")
	if t.Completed {
		check = m.styles.CheckDone.Render("[✓]")
	}

	title := t.Title
	switch {
	case t.Completed:
		title = m.styles.Done.Render(title)
	case selected:
		title = m.styles.Selected.Render(title)
	}

	return cursor + check + " " + title + "  " + m.styles.Date.Render(cli.FormatCreatedAt(t.CreatedAt))
}

// renderFooter renders the input line or the pending confirmation prompt
func (m Model) renderFooter() string {
	switch m.uiState.Mode() {
	case state.AddMode:
		return m.styles.Prompt.Render("New task") + "\n" + m.input.View()
	case state.EditMode:
		return m.styles.Prompt.Render("Edit task") + "\n" + m.input.View()
	case state.DeleteConfirmMode:
		title := ""
		if current := m.currentTask(); current != nil {
			title = current.Title
		}
		return m.styles.ConfirmBox.Render("Delete \"" + title + "\"? (y/n)")
	case state.ClearConfirmMode:
		n := m.tasks.Counts().Completed
		return m.styles.ConfirmBox.Render(fmt.Sprintf("Clear %d completed %s? (y/n)", n, plural(n)))
	}
	return ""
}

func (m Model) renderFullHelp() string {
	h := m.help
	h.ShowAll = true
	return h.View(m.keys)
}

func (m Model) renderNotification(n state.Notification) string {
	if n.Level == state.LevelError {
		return m.styles.ErrorBanner.Render(n.Message)
	}
	return m.styles.InfoBanner.Render(n.Message)
}
