package results

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/jsontree"
	"github.com/quarryapp/quarry/internal/model"
	"github.com/quarryapp/quarry/internal/ui/components"
)

// ResultsPanel displays the last response with reactive binding to state.
// The payload can be viewed as an expandable tree or as highlighted text;
// both views are built from the same raw bytes.
type ResultsPanel struct {
	widget.BaseWidget

	state *model.ResponseState

	modeTabs    *components.ModeTabs
	resultTree  *ResultTree
	textDisplay *widget.RichText

	copyKeyButton   *widget.Button
	copyValueButton *widget.Button
	copyPairButton  *widget.Button
	copyAllButton   *widget.Button
	copiedLabel     *widget.Label
	copiedTimer     *time.Timer

	statusLabel   *widget.Label
	durationLabel *widget.Label
	sizeLabel     *widget.Label
	errorEntry    *ReadOnlyEntry
	loadingBar    *widget.ProgressBarInfinite

	// Container for switching between content views
	contentContainer *fyne.Container
	resultContent    *fyne.Container
	errorContent     *fyne.Container

	selected *jsontree.Node
	formText string // pretty-printed payload backing the text view
}

// NewResultsPanel creates a new results panel bound to the application state.
func NewResultsPanel(state *model.ResponseState) *ResultsPanel {
	p := &ResultsPanel{
		state: state,
	}
	p.ExtendBaseWidget(p)
	p.initializeComponents()
	p.setupBindings()
	return p
}

// initializeComponents creates all UI components.
func (p *ResultsPanel) initializeComponents() {
	// Tree view with per-node copy actions
	p.resultTree = NewResultTree()
	p.resultTree.SetOnSelectionChange(p.handleSelectionChange)

	p.copyKeyButton = widget.NewButton("Copy Key", func() {
		if p.selected != nil {
			p.setClipboard(p.selected.Label())
		}
	})
	p.copyValueButton = widget.NewButton("Copy Value", func() {
		if p.selected != nil {
			p.setClipboard(nodeValueText(p.selected))
		}
	})
	p.copyPairButton = widget.NewButton("Copy Key: Value", func() {
		if p.selected != nil {
			p.setClipboard(p.selected.Label() + ": " + nodeValueText(p.selected))
		}
	})
	p.disableCopyButtons()

	p.copiedLabel = widget.NewLabel("Copied")
	p.copiedLabel.Importance = widget.LowImportance
	p.copiedLabel.Hide()

	treeView := container.NewBorder(
		container.NewHBox(p.copyKeyButton, p.copyValueButton, p.copyPairButton, p.copiedLabel),
		nil, nil, nil,
		p.resultTree,
	)

	// Text view with syntax highlighting and whole-payload copy
	p.textDisplay = widget.NewRichText()
	p.textDisplay.Wrapping = fyne.TextWrapOff

	p.copyAllButton = widget.NewButton("Copy Response", func() {
		p.setClipboard(p.formText)
	})

	textView := container.NewBorder(
		container.NewHBox(p.copyAllButton),
		nil, nil, nil,
		container.NewScroll(p.textDisplay),
	)

	p.modeTabs = components.NewModeTabs("Tree", treeView, "Text", textView)

	// Status row
	p.statusLabel = widget.NewLabel("")
	p.durationLabel = widget.NewLabel("")
	p.sizeLabel = widget.NewLabel("")

	// Loading bar (infinite progress)
	p.loadingBar = widget.NewProgressBarInfinite()
	p.loadingBar.Hide()

	// Error view, selectable so messages can be copied into bug reports
	p.errorEntry = NewReadOnlyMultiLineEntry()
	p.errorEntry.Wrapping = fyne.TextWrapWord

	p.resultContent = container.NewBorder(
		nil,
		container.NewVBox(
			widget.NewSeparator(),
			container.NewHBox(p.statusLabel, p.durationLabel, p.sizeLabel),
		),
		nil,
		nil,
		p.modeTabs,
	)

	p.errorContent = container.NewBorder(
		widget.NewLabel("Error:"),
		nil,
		nil,
		nil,
		p.errorEntry,
	)

	// Main content container (switches between result and error)
	p.contentContainer = container.NewStack(p.resultContent)
}

// setupBindings establishes reactive bindings to the state.
func (p *ResultsPanel) setupBindings() {
	p.statusLabel.Bind(p.state.Status)
	p.durationLabel.Bind(p.state.Duration)
	p.sizeLabel.Bind(p.state.Size)

	// Rebuild both views whenever the raw payload changes
	p.state.RawData.AddListener(binding.NewDataListener(func() {
		raw, _ := p.state.RawData.Get()
		p.setPayload([]byte(raw))
	}))

	p.state.Loading.AddListener(binding.NewDataListener(func() {
		loading, _ := p.state.Loading.Get()
		if loading {
			p.loadingBar.Start()
			p.loadingBar.Show()
		} else {
			p.loadingBar.Stop()
			p.loadingBar.Hide()
		}
	}))

	p.state.Error.AddListener(binding.NewDataListener(func() {
		errorMsg, _ := p.state.Error.Get()
		if errorMsg != "" {
			p.errorEntry.SetText(errorMsg)
			p.showError()
		} else {
			p.showResult()
		}
	}))
}

// setPayload parses the raw bytes once and feeds both views from the result.
// Unparseable payloads fall back to showing the raw text unhighlighted.
func (p *ResultsPanel) setPayload(raw []byte) {
	if len(raw) == 0 {
		p.formText = ""
		p.resultTree.SetDocument(nil)
		p.textDisplay.Segments = nil
		p.textDisplay.Refresh()
		return
	}

	root, err := jsontree.Parse(raw)
	if err != nil {
		p.formText = string(raw)
		p.resultTree.SetDocument(nil)
	} else {
		pretty, ferr := jsontree.FormatText(raw)
		if ferr != nil {
			pretty = string(raw)
		}
		p.formText = pretty
		p.resultTree.SetDocument(root)
	}

	p.textDisplay.Segments = highlightJSON(p.formText)
	p.textDisplay.Refresh()
}

// handleSelectionChange tracks the active tree node for the copy buttons.
func (p *ResultsPanel) handleSelectionChange(node *jsontree.Node) {
	p.selected = node
	if node == nil {
		p.disableCopyButtons()
		return
	}
	p.copyKeyButton.Enable()
	p.copyValueButton.Enable()
	p.copyPairButton.Enable()
}

func (p *ResultsPanel) disableCopyButtons() {
	p.copyKeyButton.Disable()
	p.copyValueButton.Disable()
	p.copyPairButton.Disable()
}

// setClipboard copies text and flashes a short confirmation next to the
// copy buttons.
func (p *ResultsPanel) setClipboard(text string) {
	fyne.CurrentApp().Clipboard().SetContent(text)

	p.copiedLabel.Show()
	if p.copiedTimer != nil {
		p.copiedTimer.Stop()
	}
	p.copiedTimer = time.AfterFunc(2*time.Second, func() {
		fyne.Do(func() {
			p.copiedLabel.Hide()
		})
	})
}

// nodeValueText returns the clipboard form of a node's value: scalars as
// their literal text, objects and arrays re-serialized as pretty JSON.
func nodeValueText(node *jsontree.Node) string {
	if !node.IsBranch() {
		return node.ValueString()
	}

	raw, err := node.Reconstruct()
	if err != nil {
		return node.ValueString()
	}
	pretty, err := jsontree.FormatText(raw)
	if err != nil {
		return string(raw)
	}
	return pretty
}

// showResult displays the result content.
func (p *ResultsPanel) showResult() {
	p.contentContainer.Objects = []fyne.CanvasObject{p.resultContent}
	p.contentContainer.Refresh()
}

// showError displays the error content.
func (p *ResultsPanel) showError() {
	p.contentContainer.Objects = []fyne.CanvasObject{p.errorContent}
	p.contentContainer.Refresh()
}

// ClearResults resets the panel to its empty state.
func (p *ResultsPanel) ClearResults() {
	_ = p.state.RawData.Set("")
	_ = p.state.Error.Set("")
	_ = p.state.Status.Set("")
	_ = p.state.Duration.Set("")
	_ = p.state.Size.Set("")
}

// CopySelection copies the selected tree node's value, or the whole
// payload when nothing is selected.
func (p *ResultsPanel) CopySelection() {
	if p.selected != nil {
		p.setClipboard(nodeValueText(p.selected))
		return
	}
	if p.formText != "" {
		p.setClipboard(p.formText)
	}
}

// SwitchToTreeMode shows the tree view.
func (p *ResultsPanel) SwitchToTreeMode() {
	p.modeTabs.SetMode("tree")
}

// SwitchToTextMode shows the text view.
func (p *ResultsPanel) SwitchToTextMode() {
	p.modeTabs.SetMode("text")
}

// CreateRenderer implements fyne.Widget.
func (p *ResultsPanel) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		nil,
		p.loadingBar,
		nil,
		nil,
		p.contentContainer,
	)

	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget.
func (p *ResultsPanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}
