package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// handleDeleteConfirm handles task deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTask()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDeleteTask performs the actual task deletion.
func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	if current := m.currentTask(); current != nil {
		if err := m.tasks.Delete(m.ctx, current.ID); err != nil {
			slog.Error("failed to delete task", "id", current.ID, "error", err)
			m.notificationState.Add(state.LevelError, "Failed to delete task: "+err.Error())
		}
	}
	m.uiState.ClampSelection(len(m.visibleTasks()))
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// handleClearConfirm handles clear-completed confirmation.
func (m Model) handleClearConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmClearCompleted()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmClearCompleted removes every completed task.
func (m Model) confirmClearCompleted() (tea.Model, tea.Cmd) {
	removed, err := m.tasks.ClearCompleted(m.ctx)
	if err != nil {
		slog.Error("failed to clear completed tasks", "error", err)
		m.notificationState.Add(state.LevelError, "Failed to clear tasks: "+err.Error())
	} else {
		m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Cleared %d completed %s", removed, plural(removed)))
	}
	m.uiState.ClampSelection(len(m.visibleTasks()))
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

func plural(n int) string {
	if n == 1 {
		return "task"
	}
	return "tasks"
}
