package results

import (
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/jsontree"
	"github.com/quarryapp/quarry/internal/ui/components"
)

// rootUID identifies the document root in the tree widget. Child UIDs are
// slash-separated child indexes below it, e.g. "$/2/0".
const rootUID = "$"

// ResultTree renders a parsed JSON document as an expandable tree. Each row
// shows the member key (or array index) with a subdued value preview.
type ResultTree struct {
	widget.BaseWidget

	tree *widget.Tree

	mu   sync.RWMutex
	root *jsontree.Node

	onSelectionChange func(node *jsontree.Node)
}

// NewResultTree creates an empty result tree.
func NewResultTree() *ResultTree {
	t := &ResultTree{}

	t.tree = widget.NewTree(
		t.childUIDs,
		t.isBranch,
		t.create,
		t.update,
	)
	t.tree.OnSelected = t.onTreeSelected
	t.tree.OnUnselected = func(widget.TreeNodeID) {
		if t.onSelectionChange != nil {
			t.onSelectionChange(nil)
		}
	}

	t.ExtendBaseWidget(t)
	return t
}

// SetDocument replaces the displayed document. A nil root clears the tree.
func (t *ResultTree) SetDocument(root *jsontree.Node) {
	t.mu.Lock()
	t.root = root
	t.mu.Unlock()

	t.tree.UnselectAll()
	if t.onSelectionChange != nil {
		t.onSelectionChange(nil)
	}
	t.tree.Refresh()
	if root != nil {
		t.tree.OpenBranch(rootUID)
		// Open the first level of children so hits and aggregations are
		// visible without clicking through the root.
		for i, child := range root.Children {
			if child.IsBranch() {
				t.tree.OpenBranch(rootUID + "/" + strconv.Itoa(i))
			}
		}
	}
}

// SetOnSelectionChange sets the callback invoked when the selected node
// changes. The callback receives nil when the selection is cleared.
func (t *ResultTree) SetOnSelectionChange(fn func(node *jsontree.Node)) {
	t.onSelectionChange = fn
}

// CreateRenderer implements fyne.Widget.
func (t *ResultTree) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.tree)
}

// childUIDs returns the child UIDs for a given parent UID.
func (t *ResultTree) childUIDs(uid string) []string {
	if uid == "" {
		t.mu.RLock()
		defer t.mu.RUnlock()
		if t.root == nil {
			return nil
		}
		return []string{rootUID}
	}

	node := t.nodeAt(uid)
	if node == nil {
		return nil
	}

	uids := make([]string, len(node.Children))
	for i := range node.Children {
		uids[i] = uid + "/" + strconv.Itoa(i)
	}
	return uids
}

// isBranch reports whether the UID's node is an object or array.
func (t *ResultTree) isBranch(uid string) bool {
	node := t.nodeAt(uid)
	return node != nil && node.IsBranch()
}

// create builds the row template: key label plus value preview.
func (t *ResultTree) create(_ bool) fyne.CanvasObject {
	key := widget.NewLabel("")
	key.TextStyle = fyne.TextStyle{Bold: true}
	hint := components.NewHintLabel("")
	return container.NewHBox(key, hint)
}

// update fills a row with the node at the given UID.
func (t *ResultTree) update(uid string, branch bool, obj fyne.CanvasObject) {
	node := t.nodeAt(uid)
	if node == nil {
		return
	}

	row := obj.(*fyne.Container)
	key := row.Objects[0].(*widget.Label)
	hint := row.Objects[1].(*components.HintLabel)

	label := node.Label()
	if uid == rootUID {
		label = node.Kind.String()
	}
	key.SetText(label)
	hint.SetText(node.ValueString())
}

// onTreeSelected reports the selected node; branch rows also toggle.
func (t *ResultTree) onTreeSelected(uid string) {
	node := t.nodeAt(uid)
	if node == nil {
		return
	}

	if t.onSelectionChange != nil {
		t.onSelectionChange(node)
	}

	if node.IsBranch() {
		if t.tree.IsBranchOpen(uid) {
			t.tree.CloseBranch(uid)
		} else {
			t.tree.OpenBranch(uid)
		}
	}
}

// nodeAt resolves a tree UID to its node by walking child indexes.
func (t *ResultTree) nodeAt(uid string) *jsontree.Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil || uid == "" {
		return nil
	}

	parts := strings.Split(uid, "/")
	if parts[0] != rootUID {
		return nil
	}

	node := t.root
	for _, part := range parts[1:] {
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		node = node.Child(idx)
		if node == nil {
			return nil
		}
	}
	return node
}
