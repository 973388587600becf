package console

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/domain"
)

// Panel is the raw API console tab: any method, any path, optional JSON
// body. A sidebar lists common read-only endpoints; activating one fills
// the form and sends the request immediately.
type Panel struct {
	widget.BaseWidget

	methodSelect  *widget.Select
	pathEntry     *widget.Entry
	bodyEntry     *widget.Entry
	sendButton    *widget.Button
	endpointsList *widget.List

	onSend func(method, path, body string)

	content *fyne.Container
}

// NewPanel creates the console tab defaulting to GET /.
func NewPanel() *Panel {
	p := &Panel{}

	p.methodSelect = widget.NewSelect([]string{"GET", "POST", "PUT", "DELETE", "HEAD"}, nil)
	p.methodSelect.SetSelected("GET")

	p.pathEntry = widget.NewEntry()
	p.pathEntry.SetPlaceHolder("/_cluster/health")
	p.pathEntry.SetText("/")

	p.bodyEntry = widget.NewMultiLineEntry()
	p.bodyEntry.TextStyle = fyne.TextStyle{Monospace: true}
	p.bodyEntry.SetPlaceHolder("Request body (optional JSON)")

	p.sendButton = widget.NewButton("Send", func() {
		if p.onSend != nil {
			p.onSend(p.methodSelect.Selected, p.pathEntry.Text, p.bodyEntry.Text)
		}
	})
	p.sendButton.Importance = widget.HighImportance

	p.endpointsList = widget.NewList(
		func() int { return len(domain.ConsoleEndpoints) },
		func() fyne.CanvasObject {
			path := widget.NewLabel("")
			path.TextStyle = fyne.TextStyle{Monospace: true}
			desc := widget.NewLabel("")
			desc.Importance = widget.LowImportance
			return container.NewVBox(path, desc)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			endpoint := domain.ConsoleEndpoints[id]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(endpoint.Method + " " + endpoint.Path)
			box.Objects[1].(*widget.Label).SetText(endpoint.Description)
		},
	)
	p.endpointsList.OnSelected = func(id widget.ListItemID) {
		p.applyEndpoint(domain.ConsoleEndpoints[id])
		p.endpointsList.UnselectAll()
		p.TriggerSend()
	}

	requestRow := container.NewBorder(
		nil, nil,
		p.methodSelect,
		p.sendButton,
		p.pathEntry,
	)

	editor := container.NewBorder(
		requestRow,
		nil, nil, nil,
		p.bodyEntry,
	)

	split := container.NewHSplit(p.endpointsList, editor)
	split.SetOffset(0.35)

	p.content = container.NewStack(split)

	p.ExtendBaseWidget(p)
	return p
}

// applyEndpoint fills the request row from a predefined endpoint. The
// body is cleared because the sidebar only lists read-only calls.
func (p *Panel) applyEndpoint(endpoint domain.Endpoint) {
	p.methodSelect.SetSelected(endpoint.Method)
	p.pathEntry.SetText(endpoint.Path)
	p.bodyEntry.SetText("")
}

// SetOnSend sets the callback invoked with the raw request parts.
func (p *Panel) SetOnSend(fn func(method, path, body string)) {
	p.onSend = fn
}

// SetRequest fills the console from a previous request, used for history replay.
func (p *Panel) SetRequest(method, path, body string) {
	p.methodSelect.SetSelected(method)
	p.pathEntry.SetText(path)
	p.bodyEntry.SetText(body)
}

// TriggerSend sends the current request as if the button was clicked.
func (p *Panel) TriggerSend() {
	if p.onSend != nil {
		p.onSend(p.methodSelect.Selected, p.pathEntry.Text, p.bodyEntry.Text)
	}
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
