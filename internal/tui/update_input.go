package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/listo/internal/models"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// handleInput handles keys while the add/edit input is focused
func (m Model) handleInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput creates or retitles a task from the input value.
// A rejected title keeps the input open so it can be corrected.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	title := m.input.Value()

	var (
		saved models.Task
		err   error
	)
	if m.uiState.Mode() == state.EditMode {
		saved, err = m.tasks.Edit(m.ctx, m.editingID, title)
	} else {
		saved, err = m.tasks.Create(m.ctx, title)
	}

	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			m.notificationState.Add(state.LevelError, err.Error())
			return m, nil
		}
		slog.Error("failed to save task", "mode", m.uiState.Mode(), "error", err)
		m.notificationState.Add(state.LevelError, "Failed to save task: "+err.Error())
	}

	m.closeInput()
	if saved.ID != "" {
		m.selectTask(saved.ID)
	}
	return m, nil
}

// closeInput blurs and clears the input and returns to the list
func (m *Model) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.editingID = ""
	m.uiState.SetMode(state.NormalMode)
}
