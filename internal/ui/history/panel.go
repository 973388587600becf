package history

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/quarryapp/quarry/internal/domain"
	"github.com/quarryapp/quarry/internal/storage"
)

// historyLimit caps how many entries the panel loads from storage.
const historyLimit = 100

// entryFilter narrows the visible history by free text and outcome.
type entryFilter struct {
	text   string // lowercased substring, "" matches everything
	status string // "", "success", or "error"
}

func (f entryFilter) active() bool {
	return f.text != "" || f.status != ""
}

func (f entryFilter) matches(entry domain.HistoryEntry) bool {
	if f.status != "" && entry.Status != f.status {
		return false
	}
	if f.text == "" {
		return true
	}
	haystack := strings.ToLower(entry.Method + " " + entry.Path + " " + entry.Body + " " + entry.Error)
	return strings.Contains(haystack, f.text)
}

// Panel lists past requests with replay, per-entry delete, and clear-all.
type Panel struct {
	widget.BaseWidget

	storage storage.Repository
	logger  *slog.Logger
	window  fyne.Window

	mu      sync.Mutex
	entries []domain.HistoryEntry // everything loaded from storage
	visible []domain.HistoryEntry // entries passing the filter
	filter  entryFilter

	list        *widget.List
	countLabel  *widget.Label
	filterEntry *widget.Entry

	onReplay func(entry domain.HistoryEntry)

	content *fyne.Container
}

// NewPanel creates the history tab and loads persisted entries.
func NewPanel(storage storage.Repository, logger *slog.Logger, window fyne.Window) *Panel {
	p := &Panel{
		storage: storage,
		logger:  logger,
		window:  window,
	}

	p.countLabel = widget.NewLabel("History (0)")

	p.filterEntry = widget.NewEntry()
	p.filterEntry.SetPlaceHolder("Filter history...")
	p.filterEntry.OnChanged = func(query string) {
		p.filter.text = strings.ToLower(query)
		p.rebuild()
	}

	statusSelect := widget.NewSelect([]string{"All", "Success", "Error"}, func(selected string) {
		switch selected {
		case "Success":
			p.filter.status = "success"
		case "Error":
			p.filter.status = "error"
		default:
			p.filter.status = ""
		}
		p.rebuild()
	})
	statusSelect.SetSelected("All")

	clearButton := widget.NewButton("Clear All", p.confirmClearAll)

	p.list = widget.NewList(p.rowCount, newEntryRow, p.updateRow)

	header := container.NewVBox(
		container.NewBorder(nil, nil, p.countLabel, clearButton),
		container.NewBorder(nil, nil, nil, statusSelect, p.filterEntry),
	)
	p.content = container.NewBorder(header, nil, nil, nil, p.list)

	p.ExtendBaseWidget(p)
	p.Refresh()
	return p
}

// Refresh reloads entries from storage. Safe to call from any goroutine.
func (p *Panel) Refresh() {
	entries, err := p.storage.GetHistory(historyLimit)
	if err != nil {
		p.logger.Error("failed to load history", slog.Any("error", err))
		fyne.Do(func() {
			p.countLabel.SetText("History (error)")
		})
		return
	}

	p.mu.Lock()
	p.entries = entries
	p.mu.Unlock()

	p.rebuild()
	p.logger.Debug("history refreshed", slog.Int("count", len(entries)))
}

// rebuild recomputes the visible slice and updates the list and counter.
func (p *Panel) rebuild() {
	p.mu.Lock()
	visible := p.visible[:0]
	for _, entry := range p.entries {
		if p.filter.matches(entry) {
			visible = append(visible, entry)
		}
	}
	p.visible = visible
	total := len(p.entries)
	shown := len(visible)
	p.mu.Unlock()

	fyne.Do(func() {
		p.list.Refresh()
		if p.filter.active() {
			p.countLabel.SetText(fmt.Sprintf("History (%d of %d)", shown, total))
		} else {
			p.countLabel.SetText(fmt.Sprintf("History (%d)", total))
		}
	})
}

func (p *Panel) rowCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.visible)
}

func (p *Panel) entryAt(id widget.ListItemID) (domain.HistoryEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id < 0 || id >= len(p.visible) {
		return domain.HistoryEntry{}, false
	}
	return p.visible[id], true
}

// newEntryRow builds the row template: timestamp, outcome, and duration
// above the request line, with replay and delete on the right.
func newEntryRow() fyne.CanvasObject {
	timestamp := widget.NewLabel("")
	outcome := widget.NewLabel("")
	duration := widget.NewLabel("")

	request := widget.NewLabel("")
	request.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	replay := widget.NewButton("Replay", nil)
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)

	return container.NewBorder(
		nil, nil, nil,
		container.NewHBox(replay, remove),
		container.NewVBox(
			container.NewHBox(timestamp, outcome, duration),
			request,
		),
	)
}

func (p *Panel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	entry, ok := p.entryAt(id)
	if !ok {
		return
	}

	row := obj.(*fyne.Container)
	buttons := row.Objects[1].(*fyne.Container)
	body := row.Objects[0].(*fyne.Container)
	meta := body.Objects[0].(*fyne.Container)

	meta.Objects[0].(*widget.Label).SetText(entry.Timestamp.Format("15:04:05"))
	meta.Objects[1].(*widget.Label).SetText(outcomeText(entry))
	meta.Objects[2].(*widget.Label).SetText(fmt.Sprintf("%dms", entry.Duration.Milliseconds()))
	body.Objects[1].(*widget.Label).SetText(entry.Method + " " + entry.Path)

	buttons.Objects[0].(*widget.Button).OnTapped = func() {
		if p.onReplay != nil {
			p.onReplay(entry)
		}
	}
	buttons.Objects[1].(*widget.Button).OnTapped = func() {
		p.deleteEntry(entry.ID)
	}
}

func outcomeText(entry domain.HistoryEntry) string {
	if entry.Status == "success" {
		return fmt.Sprintf("✓ %d", entry.StatusCode)
	}
	return "✗"
}

func (p *Panel) deleteEntry(id string) {
	if err := p.storage.DeleteHistoryEntry(id); err != nil {
		p.logger.Error("failed to delete history entry", slog.Any("error", err))
		return
	}
	p.Refresh()
}

// confirmClearAll wipes the history after an explicit confirmation.
func (p *Panel) confirmClearAll() {
	dialog.ShowConfirm("Clear History",
		"Are you sure you want to clear all history entries?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := p.storage.ClearHistory(); err != nil {
				p.logger.Error("failed to clear history", slog.Any("error", err))
				return
			}
			p.Refresh()
			p.logger.Info("history cleared")
		},
		p.window,
	)
}

// AddEntry persists a new entry and refreshes the list.
func (p *Panel) AddEntry(entry domain.HistoryEntry) error {
	if err := p.storage.AddHistoryEntry(entry); err != nil {
		p.logger.Error("failed to add history entry", slog.Any("error", err))
		return err
	}
	p.Refresh()
	return nil
}

// SetOnReplay registers the callback invoked by a row's Replay button.
func (p *Panel) SetOnReplay(fn func(entry domain.HistoryEntry)) {
	p.onReplay = fn
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// GenerateEntryID returns a unique ID for a new history entry.
func GenerateEntryID() string {
	return uuid.NewString()
}
