package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewCollapsibleSection wraps content in a single-item accordion that
// starts collapsed, keeping optional form sections out of the way.
func NewCollapsibleSection(title string, content fyne.CanvasObject) *widget.Accordion {
	section := widget.NewAccordion(widget.NewAccordionItem(title, content))
	section.Close(0)
	return section
}
