package theme

// NewCatppuccinMocha creates the default dark theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		// Semantic colors
		Primary:   "#cba6f7", // Mauve
		Secondary: "#89b4fa", // Blue

		// Background hierarchy
		BgBase:     "#1e1e2e",
		BgSurface0: "#313244",
		BgSurface1: "#45475a",
		BgOverlay:  "#6c7086",

		// Foreground hierarchy
		FgMuted:  "#6c7086",
		FgSubtle: "#a6adc8",
		FgBase:   "#cdd6f4",
		FgBright: "#ffffff",

		// Status colors
		Success: "#a6e3a1",
		Warning: "#f9e2af",
		Error:   "#f38ba8",
		Info:    "#89dceb",
	}
}

// NewCatppuccinLatte creates the light theme.
func NewCatppuccinLatte() *Theme {
	return &Theme{
		Name:   "light",
		IsDark: false,

		Primary:   "#8839ef", // Mauve
		Secondary: "#1e66f5", // Blue

		BgBase:     "#eff1f5",
		BgSurface0: "#ccd0da",
		BgSurface1: "#bcc0cc",
		BgOverlay:  "#9ca0b0",

		FgMuted:  "#9ca0b0",
		FgSubtle: "#6c6f85",
		FgBase:   "#4c4f69",
		FgBright: "#000000",

		Success: "#40a02b",
		Warning: "#df8e1d",
		Error:   "#d20f39",
		Info:    "#04a5e5",
	}
}

// NewHighContrastDark creates a dark theme with maximum legibility.
func NewHighContrastDark() *Theme {
	return &Theme{
		Name:   "high-contrast-dark",
		IsDark: true,

		Primary:   "#ffff00",
		Secondary: "#00ffff",

		BgBase:     "#000000",
		BgSurface0: "#1a1a1a",
		BgSurface1: "#333333",
		BgOverlay:  "#666666",

		FgMuted:  "#999999",
		FgSubtle: "#cccccc",
		FgBase:   "#ffffff",
		FgBright: "#ffffff",

		Success: "#00ff00",
		Warning: "#ffaa00",
		Error:   "#ff4444",
		Info:    "#00ffff",
	}
}
