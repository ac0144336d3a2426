package config

// KeyMappings defines all configurable key bindings of the TUI
type KeyMappings struct {
	// Tasks
	AddTask        string `yaml:"add_task"`
	EditTask       string `yaml:"edit_task"`
	DeleteTask     string `yaml:"delete_task"`
	ToggleTask     string `yaml:"toggle_task"`
	ClearCompleted string `yaml:"clear_completed"`

	// Navigation
	NextFilter string `yaml:"next_filter"`
	PrevFilter string `yaml:"prev_filter"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:        "a",
		EditTask:       "e",
		DeleteTask:     "d",
		ToggleTask:     "space",
		ClearCompleted: "C",

		NextFilter: "tab",
		PrevFilter: "shift+tab",
		PrevTask:   "k",
		NextTask:   "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ToggleTask == "" {
		k.ToggleTask = defaults.ToggleTask
	}
	if k.ClearCompleted == "" {
		k.ClearCompleted = defaults.ClearCompleted
	}
	if k.NextFilter == "" {
		k.NextFilter = defaults.NextFilter
	}
	if k.PrevFilter == "" {
		k.PrevFilter = defaults.PrevFilter
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
