package results

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestReadOnlyEntry_BlocksEditing(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	e := NewReadOnlyMultiLineEntry()
	e.SetText("hello")

	e.TypedRune('x')
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "hello", e.Text)

	// Navigation still moves the cursor.
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 1, e.CursorColumn)
}

func TestReadOnlyEntry_AllowsCopyBlocksPaste(t *testing.T) {
	app := test.NewApp()
	defer test.NewApp()

	e := NewReadOnlyMultiLineEntry()
	e.SetText("payload")

	e.TypedShortcut(&fyne.ShortcutSelectAll{})
	e.TypedShortcut(&fyne.ShortcutCopy{Clipboard: app.Clipboard()})
	assert.Equal(t, "payload", app.Clipboard().Content())

	app.Clipboard().SetContent("injected")
	e.TypedShortcut(&fyne.ShortcutPaste{Clipboard: app.Clipboard()})
	assert.Equal(t, "payload", e.Text)
}
