package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// handleNormal handles keys while browsing the list
func (m Model) handleNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)

	case key.Matches(msg, m.keys.Up):
		m.uiState.MoveSelection(-1, len(m.visibleTasks()))

	case key.Matches(msg, m.keys.Down):
		m.uiState.MoveSelection(1, len(m.visibleTasks()))

	case key.Matches(msg, m.keys.NextFilter):
		m.uiState.SetFilter(m.uiState.Filter().Next())

	case key.Matches(msg, m.keys.PrevFilter):
		m.uiState.SetFilter(m.uiState.Filter().Prev())

	case key.Matches(msg, m.keys.Add):
		m.input.Reset()
		m.input.Placeholder = "What needs to be done?"
		m.uiState.SetMode(state.AddMode)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		current := m.currentTask()
		if current == nil {
			return m, nil
		}
		m.editingID = current.ID
		m.input.Placeholder = ""
		m.input.SetValue(current.Title)
		m.input.CursorEnd()
		m.uiState.SetMode(state.EditMode)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleCurrentTask()

	case key.Matches(msg, m.keys.Delete):
		if m.currentTask() != nil {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}

	case key.Matches(msg, m.keys.ClearCompleted):
		if m.tasks.Counts().Completed == 0 {
			m.notificationState.Add(state.LevelInfo, "No completed tasks")
			return m, nil
		}
		m.uiState.SetMode(state.ClearConfirmMode)
	}

	return m, nil
}

// toggleCurrentTask flips the completion of the selected task.
// Under the Active and Completed tabs the row leaves the list, so the
// selection is clamped afterwards.
func (m Model) toggleCurrentTask() (tea.Model, tea.Cmd) {
	current := m.currentTask()
	if current == nil {
		return m, nil
	}

	if _, err := m.tasks.Toggle(m.ctx, current.ID); err != nil {
		slog.Error("failed to toggle task", "id", current.ID, "error", err)
		m.notificationState.Add(state.LevelError, "Failed to save task: "+err.Error())
	}
	m.uiState.ClampSelection(len(m.visibleTasks()))
	return m, nil
}
