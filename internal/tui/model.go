package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/models"
	"github.com/thenoetrevino/listo/internal/services/task"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// titleCharLimit caps what the add/edit input accepts
const titleCharLimit = 200

// Model represents the application state for the TUI
type Model struct {
	ctx   context.Context
	tasks task.Service

	keys   keyMap
	styles styles
	help   help.Model
	input  textinput.Model

	uiState           *state.UIState
	notificationState *state.NotificationState

	// editingID is the task being retitled in EditMode
	editingID string
}

// InitialModel creates the TUI model and loads the persisted task list.
// A load failure is logged and shown as a notification; the list starts empty.
func InitialModel(ctx context.Context, tasks task.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	input := textinput.New()
	input.CharLimit = titleCharLimit
	input.Prompt = "> "

	m := Model{
		ctx:               ctx,
		tasks:             tasks,
		keys:              newKeyMap(cfg.KeyMappings),
		styles:            newStyles(cfg.ColorScheme),
		help:              help.New(),
		input:             input,
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
	}

	if _, err := tasks.Load(ctx); err != nil {
		slog.Error("failed to load tasks", "error", err)
		m.notificationState.Add(state.LevelError, "Could not load tasks: "+err.Error())
	}

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// visibleTasks returns the tasks under the active filter tab
func (m Model) visibleTasks() []models.Task {
	return m.tasks.Filter(m.uiState.Filter())
}

// currentTask returns the selected task, or nil when the list is empty
func (m Model) currentTask() *models.Task {
	visible := m.visibleTasks()
	idx := m.uiState.Selected()
	if idx < 0 || idx >= len(visible) {
		return nil
	}
	return &visible[idx]
}

// selectTask moves the selection onto id when it is visible
func (m Model) selectTask(id string) {
	for i, t := range m.visibleTasks() {
		if t.ID == id {
			m.uiState.SetSelected(i)
			return
		}
	}
	m.uiState.ClampSelection(len(m.visibleTasks()))
}
