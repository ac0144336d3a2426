package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Muted:  "#8A8A8A",

		Success: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
