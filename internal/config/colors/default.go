package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Muted:  "#8A8A8A",

		Success: "#5FD75F",
		Error:   "#FF5F5F",
	}
}
