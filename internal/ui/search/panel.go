package search

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/domain"
)

// Panel is the Query-DSL search tab: a JSON query editor with a search
// button. The target index comes from the connection settings.
type Panel struct {
	widget.BaseWidget

	queryEntry   *widget.Entry
	searchButton *widget.Button
	resetButton  *widget.Button

	onSearch func(query string)

	content *fyne.Container
}

// NewPanel creates the search tab pre-filled with the match-all query.
func NewPanel() *Panel {
	p := &Panel{}

	p.queryEntry = widget.NewMultiLineEntry()
	p.queryEntry.TextStyle = fyne.TextStyle{Monospace: true}
	p.queryEntry.SetPlaceHolder(domain.DefaultQuery)
	p.queryEntry.SetText(domain.DefaultQuery)

	p.searchButton = widget.NewButton("Search", func() {
		if p.onSearch != nil {
			p.onSearch(p.queryEntry.Text)
		}
	})
	p.searchButton.Importance = widget.HighImportance

	p.resetButton = widget.NewButton("Reset Query", func() {
		p.queryEntry.SetText(domain.DefaultQuery)
	})

	p.content = container.NewBorder(
		widget.NewLabel("Query DSL"),
		container.NewHBox(p.searchButton, p.resetButton),
		nil, nil,
		p.queryEntry,
	)

	p.ExtendBaseWidget(p)
	return p
}

// SetOnSearch sets the callback invoked with the query editor contents.
func (p *Panel) SetOnSearch(fn func(query string)) {
	p.onSearch = fn
}

// Query returns the current editor contents.
func (p *Panel) Query() string {
	return p.queryEntry.Text
}

// SetQuery replaces the editor contents, used when restoring a session.
func (p *Panel) SetQuery(query string) {
	if query == "" {
		query = domain.DefaultQuery
	}
	p.queryEntry.SetText(query)
}

// TriggerSearch runs the search as if the button was clicked.
func (p *Panel) TriggerSearch() {
	if p.onSearch != nil {
		p.onSearch(p.queryEntry.Text)
	}
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
