package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemePreferenceKey stores the chosen theme mode. It matches
// settings.PrefTheme so the preferences dialog and startup agree.
const ThemePreferenceKey = "appTheme"

// pinnedVariant wraps the default theme and answers every color lookup
// with a fixed variant, ignoring the OS light/dark setting.
type pinnedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (p *pinnedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return p.Theme.Color(name, p.variant)
}

// ApplyTheme switches the app theme to "dark", "light", or "system".
// Unknown modes fall back to following the OS.
func ApplyTheme(a fyne.App, mode string) {
	base := theme.DefaultTheme()
	switch mode {
	case "dark":
		a.Settings().SetTheme(&pinnedVariant{Theme: base, variant: theme.VariantDark})
	case "light":
		a.Settings().SetTheme(&pinnedVariant{Theme: base, variant: theme.VariantLight})
	default:
		a.Settings().SetTheme(base)
	}
}

// LoadThemePreference applies the persisted theme mode at startup.
func LoadThemePreference(a fyne.App) {
	ApplyTheme(a, a.Preferences().StringWithFallback(ThemePreferenceKey, "system"))
}
