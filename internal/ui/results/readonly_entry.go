package results

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// navigationKeys are the keys a read-only entry still responds to. Anything
// outside this set would edit the text and is swallowed.
var navigationKeys = map[fyne.KeyName]bool{
	fyne.KeyLeft:     true,
	fyne.KeyRight:    true,
	fyne.KeyUp:       true,
	fyne.KeyDown:     true,
	fyne.KeyHome:     true,
	fyne.KeyEnd:      true,
	fyne.KeyPageUp:   true,
	fyne.KeyPageDown: true,
}

// ReadOnlyEntry displays response payloads and error bodies. It looks like a
// normal entry so selection and copying work, but every editing path is
// blocked, including the context menu.
type ReadOnlyEntry struct {
	widget.Entry
}

// NewReadOnlyMultiLineEntry creates a multi-line read-only entry set up in
// monospace for JSON payloads.
func NewReadOnlyMultiLineEntry() *ReadOnlyEntry {
	e := &ReadOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune blocks all character input.
func (e *ReadOnlyEntry) TypedRune(_ rune) {}

// TypedKey passes through cursor and selection movement only.
func (e *ReadOnlyEntry) TypedKey(key *fyne.KeyEvent) {
	if navigationKeys[key.Name] {
		e.Entry.TypedKey(key)
	}
}

// TypedShortcut allows copy and select-all but blocks paste, cut, undo, redo.
func (e *ReadOnlyEntry) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(shortcut)
	}
}

// TappedSecondary replaces the default context menu, which offers paste and
// cut, with a copy-only one.
func (e *ReadOnlyEntry) TappedSecondary(ev *fyne.PointEvent) {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(e)
	if canvas == nil {
		return
	}

	clipboard := fyne.CurrentApp().Clipboard()
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Copy", func() {
			e.TypedShortcut(&fyne.ShortcutCopy{Clipboard: clipboard})
		}),
		fyne.NewMenuItem("Select all", func() {
			e.TypedShortcut(&fyne.ShortcutSelectAll{})
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, canvas, ev.AbsolutePosition)
}
