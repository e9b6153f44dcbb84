package theme

// Palette and style initialization for the viewer window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Light palette.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // status line
	ColorBorder    = "#d0d7de"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Text      string
	TextMuted string
}

var darkMode bool

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Border:    "#334155",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// SetDark selects the palette. Call before InitStyles.
func SetDark(dark bool) { darkMode = dark }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

// InitStyles activates the base theme and applies the window background.
func InitStyles() {
	if darkMode {
		_ = ActivateTheme("azure dark")
	} else {
		_ = ActivateTheme("azure light")
	}
	App.Configure(Background(CurrentPalette().AppBg))
}
