package document

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/domain"
)

// Panel is the document CRUD tab: an ID field, a JSON body editor, and one
// button per operation. Get and Delete need an ID; Create generates one
// server-side when the field is empty.
type Panel struct {
	widget.BaseWidget

	window fyne.Window

	idEntry   *widget.Entry
	bodyEntry *widget.Entry

	getButton    *widget.Button
	createButton *widget.Button
	updateButton *widget.Button
	deleteButton *widget.Button

	onGet    func(id string)
	onCreate func(id, body string)
	onUpdate func(id, body string)
	onDelete func(id string)

	content *fyne.Container
}

// NewPanel creates the document tab. The window is used for the delete
// confirmation dialog.
func NewPanel(window fyne.Window) *Panel {
	p := &Panel{window: window}

	p.idEntry = widget.NewEntry()
	p.idEntry.SetPlaceHolder("Document ID (optional for Create)")

	p.bodyEntry = widget.NewMultiLineEntry()
	p.bodyEntry.TextStyle = fyne.TextStyle{Monospace: true}
	p.bodyEntry.SetPlaceHolder(domain.DefaultDocumentBody)
	p.bodyEntry.SetText(domain.DefaultDocumentBody)

	p.getButton = widget.NewButton("Get", func() {
		if p.onGet != nil {
			p.onGet(p.idEntry.Text)
		}
	})
	p.createButton = widget.NewButton("Create", func() {
		if p.onCreate != nil {
			p.onCreate(p.idEntry.Text, p.bodyEntry.Text)
		}
	})
	p.updateButton = widget.NewButton("Update", func() {
		if p.onUpdate != nil {
			p.onUpdate(p.idEntry.Text, p.bodyEntry.Text)
		}
	})
	p.deleteButton = widget.NewButton("Delete", func() {
		p.confirmDelete()
	})
	p.deleteButton.Importance = widget.DangerImportance

	p.content = container.NewBorder(
		p.idEntry,
		container.NewHBox(p.getButton, p.createButton, p.updateButton, p.deleteButton),
		nil, nil,
		p.bodyEntry,
	)

	p.ExtendBaseWidget(p)
	return p
}

// confirmDelete asks before issuing the delete, since it cannot be undone.
func (p *Panel) confirmDelete() {
	id := p.idEntry.Text
	dialog.ShowConfirm("Delete Document",
		"Delete document \""+id+"\"? This cannot be undone.",
		func(confirmed bool) {
			if confirmed && p.onDelete != nil {
				p.onDelete(id)
			}
		},
		p.window,
	)
}

// SetOnGet sets the Get callback.
func (p *Panel) SetOnGet(fn func(id string)) { p.onGet = fn }

// SetOnCreate sets the Create callback.
func (p *Panel) SetOnCreate(fn func(id, body string)) { p.onCreate = fn }

// SetOnUpdate sets the Update callback.
func (p *Panel) SetOnUpdate(fn func(id, body string)) { p.onUpdate = fn }

// SetOnDelete sets the Delete callback, invoked after user confirmation.
func (p *Panel) SetOnDelete(fn func(id string)) { p.onDelete = fn }

// ID returns the current document ID field value.
func (p *Panel) ID() string {
	return p.idEntry.Text
}

// SetID fills the ID field, used to back-fill server-generated IDs.
func (p *Panel) SetID(id string) {
	p.idEntry.SetText(id)
}

// Body returns the current body editor contents.
func (p *Panel) Body() string {
	return p.bodyEntry.Text
}

// SetBody replaces the body editor contents, used when a fetched document's
// source is loaded for editing and when restoring a session.
func (p *Panel) SetBody(body string) {
	if body == "" {
		body = domain.DefaultDocumentBody
	}
	p.bodyEntry.SetText(body)
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
