package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		darkTheme(),
		monoTheme(),
	} {
		register(t)
	}
}

// defaultTheme matches the classic look: steelblue lines on white.
func defaultTheme() Theme {
	return Theme{
		Name:        "default",
		Background:  "",
		Foreground:  "#222222",
		Title:       "#222222",
		Placeholder: "#777777",

		Axis:    "#777",
		Single:  "steelblue",
		Palette: [3]string{"blue", "green", "red"},
	}
}

// darkTheme is tuned for dark terminals and dark page backgrounds.
func darkTheme() Theme {
	return Theme{
		Name:        "dark",
		Background:  "#1e1e1e",
		Foreground:  "#d4d4d4",
		Title:       "#d4d4d4",
		Placeholder: "#6b6b6b",

		Axis:    "#8a8a8a",
		Single:  "#5fa8d3",
		Palette: [3]string{"#6c9ef8", "#4ec970", "#e06c75"},
	}
}

// monoTheme draws everything in grays.
func monoTheme() Theme {
	return Theme{
		Name:        "mono",
		Background:  "#ffffff",
		Foreground:  "#000000",
		Title:       "#000000",
		Placeholder: "#808080",

		Axis:    "#808080",
		Single:  "#000000",
		Palette: [3]string{"#000000", "#555555", "#aaaaaa"},
	}
}
