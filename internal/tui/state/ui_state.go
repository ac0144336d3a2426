package state

import "github.com/thenoetrevino/listo/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddMode                       // Typing the title of a new task
	EditMode                      // Retitling the selected task
	DeleteConfirmMode             // Confirming task deletion
	ClearConfirmMode              // Confirming removal of completed tasks
	HelpMode                      // Displaying help screen
)

// IsInput reports whether the mode owns the text input
func (m Mode) IsInput() bool {
	return m == AddMode || m == EditMode
}

// UIState manages the user interface state: the selected row, the active
// filter tab, terminal dimensions and the current interaction mode.
type UIState struct {
	selected int
	width    int
	height   int
	mode     Mode
	filter   models.TaskFilter
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:   NormalMode,
		filter: models.FilterAll,
	}
}

// Selected returns the index of the selected row in the visible list.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected updates the selected row index.
func (s *UIState) SetSelected(index int) {
	s.selected = max(0, index)
}

// ClampSelection keeps the selection inside a list of the given length.
func (s *UIState) ClampSelection(length int) {
	if length == 0 {
		s.selected = 0
		return
	}
	s.selected = min(max(0, s.selected), length-1)
}

// MoveSelection moves the selection by delta rows within a list of the given length.
func (s *UIState) MoveSelection(delta, length int) {
	s.selected += delta
	s.ClampSelection(length)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ListHeight returns the number of task rows that fit on screen.
// This is terminal height minus header, tabs and footer, ensuring a minimum of 3.
func (s *UIState) ListHeight() int {
	const headerHeight = 4 // title, counts, tabs, gap
	const footerHeight = 4 // input or prompt, notice, help, gap
	if s.height == 0 {
		return 0
	}
	return max(s.height-headerHeight-footerHeight, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Filter returns the active filter tab.
func (s *UIState) Filter() models.TaskFilter {
	return s.filter
}

// SetFilter switches the filter tab and resets the selection.
func (s *UIState) SetFilter(filter models.TaskFilter) {
	s.filter = filter
	s.selected = 0
}
