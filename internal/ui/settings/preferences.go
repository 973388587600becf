package settings

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Preference keys shared with the rest of the app.
const (
	PrefRequestTimeout = "requestTimeout"
	PrefTheme          = "appTheme"
)

const defaultTimeoutSeconds = 30

// PreferencesCallbacks carries the hooks invoked when saved preferences
// need to take effect immediately.
type PreferencesCallbacks struct {
	OnThemeChange func(mode string) // "system", "dark", or "light"
}

var themeLabels = map[string]string{
	"system": "System Default",
	"light":  "Light",
	"dark":   "Dark",
}

func themeModeFromLabel(label string) string {
	for mode, l := range themeLabels {
		if l == label {
			return mode
		}
	}
	return "system"
}

// ShowPreferencesDialog opens the preferences dialog. Nothing is persisted
// until Save is clicked; Cancel discards every change.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()

	timeoutEntry := widget.NewEntry()
	timeoutEntry.SetText(strconv.FormatFloat(
		prefs.FloatWithFallback(PrefRequestTimeout, defaultTimeoutSeconds), 'f', -1, 64))

	general := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Request Timeout (seconds)", timeoutEntry),
		),
		widget.NewLabel("Applies to every request sent to the cluster."),
	))

	themeSelect := widget.NewSelect(
		[]string{themeLabels["system"], themeLabels["light"], themeLabels["dark"]},
		nil,
	)
	label, ok := themeLabels[prefs.StringWithFallback(PrefTheme, "system")]
	if !ok {
		label = themeLabels["system"]
	}
	themeSelect.SetSelected(label)

	appearance := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelect),
		),
	))

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel",
		container.NewAppTabs(general, appearance),
		func(save bool) {
			if !save {
				return
			}

			if seconds, err := strconv.ParseFloat(timeoutEntry.Text, 64); err == nil && seconds > 0 {
				prefs.SetFloat(PrefRequestTimeout, seconds)
			}

			mode := themeModeFromLabel(themeSelect.Selected)
			prefs.SetString(PrefTheme, mode)
			if callbacks.OnThemeChange != nil {
				callbacks.OnThemeChange(mode)
			}
		}, window)

	dlg.Resize(fyne.NewSize(500, 350))
	dlg.Show()
}
