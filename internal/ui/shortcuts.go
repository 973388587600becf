package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts registers global keyboard shortcuts:
//   - Cmd/Ctrl+Return: run the active tab's request (search, or console send)
//   - Cmd/Ctrl+K: focus the host field
//   - Cmd/Ctrl+L: clear the results panel
//   - Cmd/Ctrl+1: switch results to tree view
//   - Cmd/Ctrl+2: switch results to text view
//   - Cmd/Ctrl+Shift+C: copy the selected result value
//   - Escape: cancel the in-flight request
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	runShortcut := &desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierShortcutDefault,
	}
	canvas.AddShortcut(runShortcut, func(fyne.Shortcut) {
		w.triggerActiveTab()
	})

	focusHostShortcut := &desktop.CustomShortcut{
		KeyName:  fyne.KeyK,
		Modifier: fyne.KeyModifierShortcutDefault,
	}
	canvas.AddShortcut(focusHostShortcut, func(fyne.Shortcut) {
		w.connectionPanel.FocusHost()
	})

	clearShortcut := &desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierShortcutDefault,
	}
	canvas.AddShortcut(clearShortcut, func(fyne.Shortcut) {
		w.resultsPanel.ClearResults()
	})

	treeShortcut := &desktop.CustomShortcut{
		KeyName:  fyne.Key1,
		Modifier: fyne.KeyModifierShortcutDefault,
	}
	canvas.AddShortcut(treeShortcut, func(fyne.Shortcut) {
		w.resultsPanel.SwitchToTreeMode()
	})

	textShortcut := &desktop.CustomShortcut{
		KeyName:  fyne.Key2,
		Modifier: fyne.KeyModifierShortcutDefault,
	}
	canvas.AddShortcut(textShortcut, func(fyne.Shortcut) {
		w.resultsPanel.SwitchToTextMode()
	})

	copyShortcut := &desktop.CustomShortcut{
		KeyName:  fyne.KeyC,
		Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift,
	}
	canvas.AddShortcut(copyShortcut, func(fyne.Shortcut) {
		w.resultsPanel.CopySelection()
	})

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.cancelActiveRequest()
		}
	})
}

// triggerActiveTab runs the request belonging to the selected tab. The
// console tab sends its raw request; every other tab runs the search.
func (w *MainWindow) triggerActiveTab() {
	if w.tabs.Selected() == w.consoleTab {
		w.consolePanel.TriggerSend()
		return
	}
	w.searchPanel.TriggerSearch()
}
