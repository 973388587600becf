package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestModeTabs_DefaultsToFirstMode(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	treeView := widget.NewLabel("tree")
	tabs := NewModeTabs("Tree", treeView, "Text", widget.NewLabel("text"))

	assert.Equal(t, "tree", tabs.GetMode())
	assert.Equal(t, treeView, tabs.active.Objects[0])
}

func TestModeTabs_SetMode(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tabs := NewModeTabs("Tree", widget.NewLabel("tree"), "Text", widget.NewLabel("text"))

	tests := []struct {
		name string
		set  string
		want string
	}{
		{name: "switch to text mode", set: "text", want: "text"},
		{name: "switch back to tree mode", set: "tree", want: "tree"},
		{name: "unknown mode is ignored", set: "form", want: "tree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tabs.SetMode(tt.set)
			assert.Equal(t, tt.want, tabs.GetMode())
		})
	}
}

func TestModeTabs_CallbackFiresOncePerChange(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tabs := NewModeTabs("Tree", widget.NewLabel("tree"), "Text", widget.NewLabel("text"))

	var seen []string
	tabs.SetOnModeChange(func(mode string) {
		seen = append(seen, mode)
	})

	tabs.SetMode("text")
	tabs.SetMode("text") // already selected
	tabs.SetMode("tree")

	assert.Equal(t, []string{"text", "tree"}, seen)
}

func TestModeTabs_SwitchesContent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	treeView := widget.NewLabel("tree")
	textView := widget.NewLabel("text")
	tabs := NewModeTabs("Tree", treeView, "Text", textView)

	tabs.SetMode("text")
	assert.Equal(t, textView, tabs.active.Objects[0])

	tabs.SetMode("tree")
	assert.Equal(t, treeView, tabs.active.Objects[0])
}
