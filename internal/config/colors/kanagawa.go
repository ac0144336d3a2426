package colors

// Kanagawa returns the Kanagawa Wave color scheme
func Kanagawa() *ColorScheme {
	return &ColorScheme{
		Preset: "kanagawa",

		Accent: "#957FB8", // oniViolet

		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Muted:  "#54546D", // sumiInk6

		Success: "#98BB6C", // springGreen
		Error:   "#E46876", // waveRed
	}
}
