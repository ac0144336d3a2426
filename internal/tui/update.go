package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.help.SetWidth(msg.Width)
		m.input.SetWidth(max(msg.Width-4, 10))
		return m, nil
	}

	if m.uiState.Mode().IsInput() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	m.notificationState.Clear()

	switch m.uiState.Mode() {
	case state.AddMode, state.EditMode:
		return m.handleInput(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.ClearConfirmMode:
		return m.handleClearConfirm(msg)
	case state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormal(msg)
	}
}
