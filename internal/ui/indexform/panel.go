package indexform

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/domain"
	apperrors "github.com/quarryapp/quarry/internal/errors"
	"github.com/quarryapp/quarry/internal/es"
	"github.com/quarryapp/quarry/internal/ui/components"
)

// Panel is the create-index tab: name and shard counts up front, optional
// settings, mappings, and aliases JSON in collapsible sections. A template
// selector pre-fills the whole form.
type Panel struct {
	widget.BaseWidget

	nameEntry      *widget.Entry
	shardsEntry    *widget.Entry
	replicasEntry  *widget.Entry
	templateSelect *widget.Select
	settingsEntry  *widget.Entry
	mappingsEntry  *widget.Entry
	aliasesEntry   *widget.Entry
	createButton   *widget.Button

	onCreate func(name string, def es.IndexDefinition)
	onError  func(err error)

	content *fyne.Container
}

// NewPanel creates the create-index tab with the Basic template applied.
func NewPanel() *Panel {
	p := &Panel{}

	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder("index-name")

	p.shardsEntry = widget.NewEntry()
	p.replicasEntry = widget.NewEntry()

	p.settingsEntry = newJSONEntry("Additional settings JSON")
	p.mappingsEntry = newJSONEntry("Mappings JSON")
	p.aliasesEntry = newJSONEntry("Aliases JSON")

	templateNames := make([]string, len(domain.IndexTemplates))
	for i, tpl := range domain.IndexTemplates {
		templateNames[i] = tpl.Name
	}
	p.templateSelect = widget.NewSelect(templateNames, func(selected string) {
		for _, tpl := range domain.IndexTemplates {
			if tpl.Name == selected {
				p.applyTemplate(tpl)
				return
			}
		}
	})

	p.createButton = widget.NewButton("Create Index", func() {
		p.handleCreate()
	})
	p.createButton.Importance = widget.HighImportance

	topForm := widget.NewForm(
		widget.NewFormItem("Template", p.templateSelect),
		widget.NewFormItem("Index Name", p.nameEntry),
		widget.NewFormItem("Shards", p.shardsEntry),
		widget.NewFormItem("Replicas", p.replicasEntry),
	)

	advanced := container.NewVBox(
		components.NewCollapsibleSection("Settings", p.settingsEntry),
		components.NewCollapsibleSection("Mappings", p.mappingsEntry),
		components.NewCollapsibleSection("Aliases", p.aliasesEntry),
	)

	p.content = container.NewBorder(
		topForm,
		p.createButton,
		nil, nil,
		container.NewVScroll(advanced),
	)

	p.templateSelect.SetSelected("Basic")

	p.ExtendBaseWidget(p)
	return p
}

func newJSONEntry(placeholder string) *widget.Entry {
	e := widget.NewMultiLineEntry()
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.SetPlaceHolder(placeholder)
	e.SetMinRowsVisible(4)
	return e
}

// applyTemplate fills the form from a preset; the index name is kept.
func (p *Panel) applyTemplate(tpl domain.IndexTemplate) {
	p.shardsEntry.SetText(strconv.Itoa(tpl.Shards))
	p.replicasEntry.SetText(strconv.Itoa(tpl.Replicas))
	p.settingsEntry.SetText(tpl.Settings)
	p.mappingsEntry.SetText(tpl.Mappings)
	p.aliasesEntry.SetText(tpl.Aliases)
}

// handleCreate validates the numeric fields and hands the definition off.
func (p *Panel) handleCreate() {
	if p.onCreate == nil {
		return
	}

	def, err := p.Definition()
	if err != nil {
		if p.onError != nil {
			p.onError(err)
		}
		return
	}
	p.onCreate(p.nameEntry.Text, def)
}

// Definition assembles the current form values. Shards and replicas must be
// numeric; the JSON sections are validated later when the body is built.
func (p *Panel) Definition() (es.IndexDefinition, error) {
	shards, err := strconv.Atoi(p.shardsEntry.Text)
	if err != nil || shards < 1 {
		return es.IndexDefinition{}, apperrors.ValidationError{
			Field:   "shards",
			Message: "shards must be a positive number",
		}
	}

	replicas, err := strconv.Atoi(p.replicasEntry.Text)
	if err != nil || replicas < 0 {
		return es.IndexDefinition{}, apperrors.ValidationError{
			Field:   "replicas",
			Message: "replicas must be zero or more",
		}
	}

	return es.IndexDefinition{
		Shards:   shards,
		Replicas: replicas,
		Settings: p.settingsEntry.Text,
		Mappings: p.mappingsEntry.Text,
		Aliases:  p.aliasesEntry.Text,
	}, nil
}

// SetOnCreate sets the callback invoked with the index name and definition.
func (p *Panel) SetOnCreate(fn func(name string, def es.IndexDefinition)) {
	p.onCreate = fn
}

// SetOnError sets the callback for local validation failures.
func (p *Panel) SetOnError(fn func(err error)) {
	p.onError = fn
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
