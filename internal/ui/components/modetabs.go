package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ModeTabs toggles between two content views with a horizontal RadioGroup,
// visually distinct from content-level AppTabs. A mode is the lowercased
// option label.
type ModeTabs struct {
	widget.BaseWidget

	labels [2]string
	views  map[string]fyne.CanvasObject

	picker *widget.RadioGroup
	active *fyne.Container

	onModeChange func(mode string)
}

// NewModeTabs creates the toggle with the first view selected.
func NewModeTabs(firstLabel string, firstView fyne.CanvasObject, secondLabel string, secondView fyne.CanvasObject) *ModeTabs {
	m := &ModeTabs{
		labels: [2]string{firstLabel, secondLabel},
		views: map[string]fyne.CanvasObject{
			strings.ToLower(firstLabel):  firstView,
			strings.ToLower(secondLabel): secondView,
		},
	}

	m.active = container.NewStack(firstView)
	m.picker = widget.NewRadioGroup([]string{firstLabel, secondLabel}, m.onPicked)
	m.picker.Horizontal = true
	m.picker.Selected = firstLabel

	m.ExtendBaseWidget(m)
	return m
}

func (m *ModeTabs) onPicked(selected string) {
	mode := strings.ToLower(selected)
	if view, ok := m.views[mode]; ok {
		m.active.Objects = []fyne.CanvasObject{view}
		m.active.Refresh()
	}
	if m.onModeChange != nil {
		m.onModeChange(mode)
	}
}

// SetOnModeChange registers a callback receiving the new mode.
func (m *ModeTabs) SetOnModeChange(fn func(mode string)) {
	m.onModeChange = fn
}

// SetMode switches to the given mode. Unknown modes and the current mode
// are ignored, so the callback never fires redundantly.
func (m *ModeTabs) SetMode(mode string) {
	if mode == m.GetMode() {
		return
	}
	for _, label := range m.labels {
		if strings.ToLower(label) == mode {
			m.picker.SetSelected(label)
			return
		}
	}
}

// GetMode returns the selected mode.
func (m *ModeTabs) GetMode() string {
	if m.picker.Selected == "" {
		return strings.ToLower(m.labels[0])
	}
	return strings.ToLower(m.picker.Selected)
}

// CreateRenderer implements fyne.Widget.
func (m *ModeTabs) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(
		container.NewBorder(m.picker, nil, nil, nil, m.active),
	)
}
