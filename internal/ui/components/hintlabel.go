package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var _ desktop.Hoverable = (*HintLabel)(nil)

// previewLimit is the rune count shown inline before the value is elided.
const previewLimit = 40

// HintLabel is a subdued one-line value preview. Values longer than the
// preview limit are elided with "…" and revealed in full by a hover popup.
type HintLabel struct {
	widget.BaseWidget

	value   string
	display *widget.Label
	tip     *widget.PopUp
}

// NewHintLabel creates a preview label for the given value.
func NewHintLabel(value string) *HintLabel {
	h := &HintLabel{}
	h.display = widget.NewLabel("")
	h.display.Importance = widget.LowImportance
	h.ExtendBaseWidget(h)
	h.SetText(value)
	return h
}

// SetText replaces the previewed value.
func (h *HintLabel) SetText(value string) {
	h.value = value
	h.display.SetText(h.preview())
}

func (h *HintLabel) preview() string {
	runes := []rune(h.value)
	if len(runes) <= previewLimit {
		return h.value
	}
	return string(runes[:previewLimit-1]) + "…"
}

func (h *HintLabel) elided() bool {
	return len([]rune(h.value)) > previewLimit
}

// MouseIn opens a popup with the full value when the preview is elided.
func (h *HintLabel) MouseIn(_ *desktop.MouseEvent) {
	if !h.elided() {
		return
	}
	canvas := fyne.CurrentApp().Driver().CanvasForObject(h)
	if canvas == nil {
		return
	}
	h.tip = widget.NewPopUp(widget.NewLabel(h.value), canvas)
	h.tip.ShowAtRelativePosition(fyne.NewPos(0, h.Size().Height), h)
}

func (h *HintLabel) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut dismisses the popup.
func (h *HintLabel) MouseOut() {
	if h.tip != nil {
		h.tip.Hide()
		h.tip = nil
	}
}

// CreateRenderer implements fyne.Widget.
func (h *HintLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.display)
}
