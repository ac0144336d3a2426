package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default", "monochrome", "kanagawa")
	Preset string `yaml:"preset"`

	// Primary accent color (selected row, active filter tab, input prompt)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Dates, help line, placeholders
	Muted  string `yaml:"muted"`  // Completed task titles

	// Status colors
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "kanagawa":
		return Kanagawa()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Muted == "" {
		c.Muted = preset.Muted
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}

// MergeFrom overlays every non-empty value of other onto c. A preset change
// resets the scheme to that preset before the overlay.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Muted != "" {
		c.Muted = other.Muted
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.Error != "" {
		c.Error = other.Error
	}
}
